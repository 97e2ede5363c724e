package el

import (
	"encoding/json"
	"fmt"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Link attributes

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Method sets the method attribute.
func Method(method string) Attr { return attr("method", method) }

// Action sets the action attribute.
func Action(action string) Attr { return attr("action", action) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attr { return attr("autocomplete", value) }

// Min sets the min attribute.
func Min(v string) Attr { return attr("min", v) }

// Max sets the max attribute.
func Max(v string) Attr { return attr("max", v) }

// Step sets the step attribute.
func Step(v string) Attr { return attr("step", v) }

// Boolean attributes

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Required sets the required attribute.
func Required(required bool) Attr { return attr("required", required) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Readonly sets the readonly attribute.
func Readonly(readonly bool) Attr { return attr("readonly", readonly) }

// Selected sets the selected attribute.
func Selected(selected bool) Attr { return attr("selected", selected) }

// Defer sets the defer attribute.
func Defer() Attr { return attr("defer", true) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// Attribute creates an attribute with an arbitrary key. Escape hatch for
// anything without a dedicated helper.
func Attribute(key string, value any) Attr { return attr(key, value) }

// AttrIf returns the attribute when condition holds and an empty (skipped)
// attribute otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// =============================================================================
// htmx attributes
// =============================================================================

// HxGet issues a GET to the given URL on trigger.
func HxGet(url string) Attr { return attr("hx-get", url) }

// HxPost issues a POST to the given URL on trigger.
func HxPost(url string) Attr { return attr("hx-post", url) }

// HxPut issues a PUT to the given URL on trigger.
func HxPut(url string) Attr { return attr("hx-put", url) }

// HxPatch issues a PATCH to the given URL on trigger.
func HxPatch(url string) Attr { return attr("hx-patch", url) }

// HxDelete issues a DELETE to the given URL on trigger.
func HxDelete(url string) Attr { return attr("hx-delete", url) }

// HxTarget sets the element the response is swapped into.
func HxTarget(selector string) Attr { return attr("hx-target", selector) }

// HxSwap sets the swap strategy (innerHTML, outerHTML, beforeend, ...).
func HxSwap(strategy string) Attr { return attr("hx-swap", strategy) }

// HxTrigger sets the event that triggers the request.
func HxTrigger(trigger string) Attr { return attr("hx-trigger", trigger) }

// HxPushURL controls history push for the request.
func HxPushURL(value string) Attr { return attr("hx-push-url", value) }

// HxIndicator sets the element shown while a request is in flight.
func HxIndicator(selector string) Attr { return attr("hx-indicator", selector) }

// HxConfirm shows a confirm() dialog before issuing the request.
func HxConfirm(message string) Attr { return attr("hx-confirm", message) }

// HxBoost progressively enhances anchors and forms under the element.
func HxBoost(enabled bool) Attr { return attr("hx-boost", fmt.Sprintf("%t", enabled)) }

// HxHeaders attaches extra request headers, serialized as a JSON object.
func HxHeaders(headers map[string]string) Attr {
	data, err := json.Marshal(headers)
	if err != nil {
		return attr("hx-headers", "{}")
	}
	return attr("hx-headers", string(data))
}

// =============================================================================
// Alpine.js attributes
// =============================================================================

// XData declares an Alpine component scope, serialized as a JSON object.
func XData(data map[string]any) Attr {
	raw, err := json.Marshal(data)
	if err != nil {
		return attr("x-data", "{}")
	}
	return attr("x-data", string(raw))
}

// XDataRaw declares an Alpine component scope from a raw expression string.
func XDataRaw(expr string) Attr { return attr("x-data", expr) }

// XShow toggles visibility based on the expression.
func XShow(expr string) Attr { return attr("x-show", expr) }

// XIf conditionally renders the element based on the expression.
func XIf(expr string) Attr { return attr("x-if", expr) }

// XText sets the element's text content from the expression.
func XText(expr string) Attr { return attr("x-text", expr) }

// XModel two-way binds an input to a data property.
func XModel(expr string) Attr { return attr("x-model", expr) }

// XOn attaches an event listener, e.g. XOn("click", "open = !open").
func XOn(event, expr string) Attr { return attr("x-on:"+event, expr) }

// XBind binds an attribute to an expression, e.g. XBind("class", "...").
func XBind(attribute, expr string) Attr { return attr("x-bind:"+attribute, expr) }

// XRef registers the element so it can be reached via $refs.
func XRef(name string) Attr { return attr("x-ref", name) }

// XCloak hides the element until Alpine has initialized.
func XCloak() Attr { return attr("x-cloak", true) }

// XTransition enables default enter/leave transitions.
func XTransition() Attr { return attr("x-transition", true) }
