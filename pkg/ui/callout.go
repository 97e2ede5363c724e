package ui

import "github.com/danielkjellid/hue/el"

// CalloutVariant determines the color treatment of a Callout.
type CalloutVariant string

const (
	CalloutGray    CalloutVariant = "gray"
	CalloutPrimary CalloutVariant = "primary"
	CalloutInfo    CalloutVariant = "info"
	CalloutSuccess CalloutVariant = "success"
	CalloutWarning CalloutVariant = "warning"
	CalloutError   CalloutVariant = "error"
)

var calloutIconClasses = map[CalloutVariant]string{
	CalloutGray:    "text-surface-400",
	CalloutPrimary: "text-primary",
	CalloutInfo:    "text-wg-blue",
	CalloutSuccess: "text-wg-green",
	CalloutWarning: "text-wg-yellow",
	CalloutError:   "text-wg-red",
}

var calloutTitleClasses = map[CalloutVariant][]string{
	CalloutGray:    {"text-surface-900"},
	CalloutPrimary: {"text-surface-900"},
	CalloutInfo:    {"text-wg-blue-800"},
	CalloutSuccess: {"text-wg-green-800"},
	CalloutWarning: {"text-wg-yellow-800"},
	CalloutError:   {"text-wg-red-800"},
}

// CalloutProps configures a Callout.
type CalloutProps struct {
	Variant CalloutVariant

	// Title renders a heading line above the children when set.
	Title string
}

// Callout renders an inline notice with an icon, an optional title, and body
// content.
func Callout(props CalloutProps, children ...any) *el.Node {
	variant := props.Variant
	if variant == "" {
		variant = CalloutGray
	}

	body := []any{}
	if props.Title != "" {
		body = append(body, el.P(
			el.Class(el.ClassNames("font-medium leading-6", calloutTitleClasses[variant])),
			props.Title,
		))
	}
	body = append(body, children...)

	return el.Div(
		el.Class("rounded-lg border border-surface-100 bg-surface-50 p-4"),
		el.Role("status"),
		Stack(StackProps{Direction: Horizontal},
			Icon(IconInformation, "size-4", "flex-shrink-0", "mt-1", calloutIconClasses[variant]),
			VStack(body...),
		),
	)
}
