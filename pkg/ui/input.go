package ui

import "github.com/danielkjellid/hue/el"

// InputProps configures the text-like input components.
type InputProps struct {
	// Name is the form field name. Also used as the element id when ID is
	// empty.
	Name string

	// ID overrides the element id.
	ID string

	// Label renders a Label above the input when set.
	Label string

	Placeholder  string
	Value        string
	Autocomplete string
	Required     bool
	Disabled     bool
}

// TextInput renders a single-line text input, optionally with a label.
func TextInput(props InputProps) *el.Node {
	return inputOfType("text", props)
}

// EmailInput renders an email input, optionally with a label.
func EmailInput(props InputProps) *el.Node {
	return inputOfType("email", props)
}

// PasswordInput renders a password input, optionally with a label.
func PasswordInput(props InputProps) *el.Node {
	return inputOfType("password", props)
}

// NumberInput renders a numeric input, optionally with a label.
func NumberInput(props InputProps) *el.Node {
	return inputOfType("number", props)
}

// HiddenInput renders a hidden input.
func HiddenInput(name, value string) *el.Node {
	return el.Input(el.Type("hidden"), el.Name(name), el.Value(value))
}

func inputOfType(inputType string, props InputProps) *el.Node {
	id := props.ID
	if id == "" {
		id = props.Name
	}

	classes := el.ClassNames(
		"block", "w-full", "rounded-lg", "border", "px-3", "py-2",
		"text-sm", "leading-6", "antialiased", "transition-colors",
		"focus:outline-0", "focus-visible:outline", "focus-visible:outline-2",
		el.ClassesIfElse(props.Disabled,
			[]string{"border-surface-50", "text-surface-300", "pointer-events-none"},
			[]string{"border-surface-200", "text-surface-900"},
		),
	)

	input := el.Input(
		el.Type(inputType),
		el.ID(id),
		el.Name(props.Name),
		el.Class(classes),
		el.AttrIf(props.Placeholder != "", el.Placeholder(props.Placeholder)),
		el.AttrIf(props.Value != "", el.Value(props.Value)),
		el.AttrIf(props.Autocomplete != "", el.Autocomplete(props.Autocomplete)),
		el.Required(props.Required),
		el.Disabled(props.Disabled),
	)

	if props.Label == "" {
		return input
	}

	return VStack(
		Label(props.Label, LabelProps{
			For:      id,
			Optional: !props.Required,
			Disabled: props.Disabled,
		}),
		input,
	)
}
