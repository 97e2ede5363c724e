package ui

import "github.com/danielkjellid/hue/el"

// IconName identifies a built-in icon.
type IconName string

const (
	IconMail        IconName = "mail"
	IconInformation IconName = "information"
	IconMoon        IconName = "moon"
	IconSun         IconName = "sun"
	IconMenu        IconName = "menu"
	IconClose       IconName = "close"
	IconCheck       IconName = "check"
	IconWarning     IconName = "warning"
)

// iconPaths holds the svg path data per icon, drawn on a 24x24 viewBox with
// stroked lines.
var iconPaths = map[IconName][]string{
	IconMail: {
		"M3 8l9 6 9-6",
		"M3 6a2 2 0 012-2h14a2 2 0 012 2v12a2 2 0 01-2 2H5a2 2 0 01-2-2V6z",
	},
	IconInformation: {
		"M12 16v-4",
		"M12 8h.01",
		"M12 22a10 10 0 100-20 10 10 0 000 20z",
	},
	IconMoon: {
		"M21 12.79A9 9 0 1111.21 3 7 7 0 0021 12.79z",
	},
	IconSun: {
		"M12 17a5 5 0 100-10 5 5 0 000 10z",
		"M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42",
	},
	IconMenu: {
		"M3 12h18M3 6h18M3 18h18",
	},
	IconClose: {
		"M18 6L6 18M6 6l12 12",
	},
	IconCheck: {
		"M20 6L9 17l-5-5",
	},
	IconWarning: {
		"M10.29 3.86L1.82 18a2 2 0 001.71 3h16.94a2 2 0 001.71-3L13.71 3.86a2 2 0 00-3.42 0z",
		"M12 9v4",
		"M12 17h.01",
	},
}

// Icon renders a built-in inline SVG icon. Unknown names render nothing.
func Icon(name IconName, classes ...string) *el.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return el.Nothing()
	}

	args := []any{
		el.Attribute("viewBox", "0 0 24 24"),
		el.Attribute("fill", "none"),
		el.Attribute("stroke", "currentColor"),
		el.Attribute("stroke-width", "2"),
		el.Attribute("stroke-linecap", "round"),
		el.Attribute("stroke-linejoin", "round"),
		el.AriaHidden(true),
	}
	if len(classes) > 0 {
		args = append(args, el.Class(classes...))
	}
	for _, d := range paths {
		args = append(args, el.Path(el.Attribute("d", d)))
	}

	return el.Svg(args...)
}
