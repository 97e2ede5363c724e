// Package ui provides hue's built-in components: buttons, text, inputs,
// layout stacks, callouts, and form helpers. All components build el.Node
// trees styled with Tailwind utility classes; the hue CLI's content scanner
// picks those classes up for the CSS build.
package ui
