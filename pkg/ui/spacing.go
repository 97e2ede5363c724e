package ui

// Size is the shared spacing scale for layout components.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// spacingXY maps a size to its horizontal and vertical space-between classes.
type spacingXY struct {
	x string
	y string
}

var spacing = map[Size]spacingXY{
	SizeXS: {x: "space-x-1", y: "space-y-1"},
	SizeSM: {x: "space-x-2", y: "space-y-2"},
	SizeMD: {x: "space-x-5", y: "space-y-5"},
	SizeLG: {x: "space-x-8", y: "space-y-8"},
	SizeXL: {x: "space-x-16", y: "space-y-16"},
}

// marginBottom maps a size to the bottom margin class used by Spacer.
var marginBottom = map[Size]string{
	SizeXS: "mb-1",
	SizeSM: "mb-2",
	SizeMD: "mb-5",
	SizeLG: "mb-8",
	SizeXL: "mb-16",
}
