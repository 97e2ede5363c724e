package ui

import "github.com/danielkjellid/hue/el"

// Direction controls the main axis of a Stack.
type Direction string

const (
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

// StackProps configures a Stack. The zero value gives a vertical stack with
// small spacing, start-aligned on both axes.
type StackProps struct {
	Direction Direction
	Spacing   Size
	// Justify is a justify-content utility class, e.g. "justify-between".
	Justify string
	// Align is an align-items utility class, e.g. "items-center".
	Align string
}

// Stack lays out its children in a flex row or column with even spacing.
func Stack(props StackProps, children ...any) *el.Node {
	if props.Direction == "" {
		props.Direction = Vertical
	}
	if props.Spacing == "" {
		props.Spacing = SizeSM
	}
	if props.Justify == "" {
		props.Justify = "justify-start"
	}
	if props.Align == "" {
		props.Align = "items-start"
	}

	xy := spacing[props.Spacing]
	gap := xy.y
	if props.Direction == Horizontal {
		gap = xy.x
	}

	classes := el.ClassNames(
		"flex",
		"w-full",
		props.Justify,
		props.Align,
		map[string]bool{
			"flex-col": props.Direction == Vertical,
			"flex-row": props.Direction == Horizontal,
		},
		gap,
	)

	args := append([]any{el.Class(classes)}, children...)
	return el.Div(args...)
}

// VStack is a vertical Stack with default spacing.
func VStack(children ...any) *el.Node {
	return Stack(StackProps{}, children...)
}

// HStack is a horizontal Stack with default spacing.
func HStack(children ...any) *el.Node {
	return Stack(StackProps{Direction: Horizontal}, children...)
}

// Spacer renders an empty block element creating vertical space. Avoid inside
// stacks with their own spacing; it is a plain div and takes up layout room.
func Spacer(size Size) *el.Node {
	margin, ok := marginBottom[size]
	if !ok {
		margin = marginBottom[SizeSM]
	}
	return el.Div(el.Class(margin))
}
