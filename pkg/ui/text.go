package ui

import "github.com/danielkjellid/hue/el"

// TextVariant is the typographic scale for Text.
type TextVariant string

const (
	Title1    TextVariant = "title-1"
	Title2    TextVariant = "title-2"
	Title3    TextVariant = "title-3"
	Subtitle1 TextVariant = "subtitle-1"
	Subtitle2 TextVariant = "subtitle-2"
	BodyText  TextVariant = "body"
)

var textVariantClasses = map[TextVariant][]string{
	Title1:    {"text-5xl", "font-bold"},
	Title2:    {"text-3xl", "font-bold"},
	Title3:    {"text-2xl"},
	Subtitle1: {"text-base", "font-medium"},
	Subtitle2: {"text-sm", "font-medium", "leading-6"},
	BodyText:  {"text-sm", "leading-6"},
}

// TextProps configures a Text component. The zero value gives left-aligned
// body text in the default foreground color.
type TextProps struct {
	Variant TextVariant

	// Tag overrides the element tag. Defaults to "p".
	Tag string

	// Muted renders the text in the muted foreground color.
	Muted bool

	// Destructive renders the text in the destructive color. Wins over Muted.
	Destructive bool

	// Align is a text alignment utility class, e.g. "text-center".
	Align string
}

// Text renders structured body or heading text.
func Text(props TextProps, children ...any) *el.Node {
	variant := props.Variant
	if variant == "" {
		variant = BodyText
	}
	tag := props.Tag
	if tag == "" {
		tag = "p"
	}
	align := props.Align
	if align == "" {
		align = "text-left"
	}

	classes := el.ClassNames(
		textVariantClasses[variant],
		map[string]bool{
			"text-surface-900": !props.Muted && !props.Destructive,
			"text-surface-500": props.Muted && !props.Destructive,
			"text-destructive": props.Destructive,
		},
		align,
	)

	args := append([]any{el.Class(classes)}, children...)
	return el.El(tag, args...)
}

// LabelProps configures a Label.
type LabelProps struct {
	// For is the id of the labelled control.
	For string

	// Optional drops the required marker. Labels mark fields required by
	// default, matching how most hue forms are built.
	Optional bool

	Disabled bool

	// Hidden keeps the label for screen readers only.
	Hidden bool
}

// Label renders a form field label, with a required marker unless the field
// is optional.
func Label(text string, props LabelProps) *el.Node {
	classes := el.ClassNames(
		"inline-flex", "items-center", "gap-1",
		"text-sm", "font-medium", "leading-6",
		map[string]bool{
			"pointer-events-none": props.Disabled,
			"text-surface-300":    props.Disabled,
			"text-surface-900":    !props.Disabled,
			"cursor-pointer":      !props.Disabled,
			"sr-only":             props.Hidden,
		},
	)

	return el.Label(
		el.Class(classes),
		el.AttrIf(props.For != "", el.For(props.For)),
		el.Span(text),
		el.Unless(props.Optional, el.Span(el.Class("text-destructive"), "*")),
	)
}
