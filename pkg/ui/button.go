package ui

import "github.com/danielkjellid/hue/el"

// ButtonVariant determines the color treatment of a button.
type ButtonVariant string

const (
	ButtonPrimary              ButtonVariant = "primary"
	ButtonSecondary            ButtonVariant = "secondary"
	ButtonTertiary             ButtonVariant = "tertiary"
	ButtonOutline              ButtonVariant = "outline"
	ButtonTransparent          ButtonVariant = "transparent"
	ButtonPrimaryDestructive   ButtonVariant = "primary-destructive"
	ButtonSecondaryDestructive ButtonVariant = "secondary-destructive"
	ButtonOutlineDestructive   ButtonVariant = "outline-destructive"
)

// ButtonSize determines the padding scale of a button.
type ButtonSize string

const (
	ButtonSM ButtonSize = "sm"
	ButtonMD ButtonSize = "md"
	ButtonLG ButtonSize = "lg"
)

// ButtonShape determines the corner treatment of a button.
type ButtonShape string

const (
	ButtonRounded ButtonShape = "rounded"
	ButtonPill    ButtonShape = "pill"
)

var buttonVariantClasses = map[ButtonVariant][]string{
	ButtonPrimary: {
		"bg-primary", "text-white", "outline-primary",
		"hover:bg-primary-600", "disabled:opacity-50",
	},
	ButtonSecondary: {
		"bg-secondary", "text-white", "outline-secondary",
		"hover:bg-secondary-700", "disabled:bg-secondary-200",
	},
	ButtonTertiary: {
		"bg-surface", "text-surface-900", "outline-surface",
		"hover:bg-surface-100", "disabled:text-surface-300",
	},
	ButtonOutline: {
		"border", "border-surface-200", "shadow-xs", "hover:bg-surface",
		"text-surface-900", "outline-primary", "disabled:text-surface-300",
	},
	ButtonTransparent: {
		"bg-transparent", "hover:bg-surface", "text-surface-900",
		"outline-primary", "disabled:text-surface-300",
	},
	ButtonPrimaryDestructive: {
		"bg-destructive", "text-white", "outline-destructive",
		"hover:bg-destructive-600", "disabled:bg-destructive",
	},
	ButtonSecondaryDestructive: {
		"bg-destructive", "text-white", "outline-destructive",
		"hover:bg-destructive-600", "disabled:opacity-50",
	},
	ButtonOutlineDestructive: {
		"border-destructive", "hover:bg-destructive-50", "text-destructive-700",
		"outline-destructive", "disabled:text-destructive-300",
	},
}

// ButtonProps configures a Button. The zero value gives a fluid, medium,
// rounded primary button of type "button".
type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	Shape   ButtonShape

	// Fixed disables the default full-width sizing.
	Fixed bool

	// Type is the button type attribute. Defaults to "button".
	Type string

	Disabled bool
}

// Button renders a styled button element.
func Button(props ButtonProps, children ...any) *el.Node {
	if props.Type == "" {
		props.Type = "button"
	}

	args := []any{
		el.Class(buttonClasses(props)),
		el.Attribute("tabindex", "0"),
		el.Type(props.Type),
		el.Disabled(props.Disabled),
	}
	args = append(args, children...)
	return el.Button(args...)
}

// SubmitButton is a Button with type "submit".
func SubmitButton(props ButtonProps, children ...any) *el.Node {
	props.Type = "submit"
	return Button(props, children...)
}

// buttonClasses builds the class list shared by all button renditions.
func buttonClasses(props ButtonProps) string {
	variant := props.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	size := props.Size
	if size == "" {
		size = ButtonMD
	}
	shape := props.Shape
	if shape == "" {
		shape = ButtonRounded
	}

	return el.ClassNames(
		map[string]bool{
			"rounded-lg":   shape == ButtonRounded,
			"rounded-full": shape == ButtonPill,
		},
		map[string]bool{
			"w-full": !props.Fixed,
			"w-fit":  props.Fixed,
		},
		map[string]bool{
			"gap-0 p-1": size == ButtonSM,
			"gap-1 p-2": size == ButtonMD,
			"gap-1 p-3": size == ButtonLG,
		},
		buttonVariantClasses[variant],
		"group inline-flex select-none items-center justify-center cursor-pointer",
		"text-sm font-medium leading-6 transition-colors duration-100 antialiased",
		"focus:outline-0 focus-visible:outline focus-visible:outline-2",
		"focus-visible:outline-offset-2 disabled:pointer-events-none",
	)
}
