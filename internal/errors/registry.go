package errors

// errorTemplate defines a registered error type.
type errorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]errorTemplate{
	// Config errors (H100-H149)

	"H120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "hue.yaml could not be parsed. Check that the file is valid YAML.",
	},
	"H141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "hue looks for hue.yaml in the current directory and its parents.",
	},
	"H142": {
		Category: CategoryConfig,
		Message:  "Invalid environment file",
		Detail:   "The .env file exists but could not be loaded.",
	},

	// Tailwind errors (H200-H249)

	"H201": {
		Category: CategoryTailwind,
		Message:  "Tailwind binary not found",
		Detail:   "The standalone Tailwind CSS binary is not installed.",
	},
	"H202": {
		Category: CategoryTailwind,
		Message:  "Tailwind binary download failed",
		Detail:   "The standalone Tailwind CSS binary could not be downloaded.",
	},
	"H203": {
		Category: CategoryTailwind,
		Message:  "Tailwind build failed",
		Detail:   "The Tailwind CSS build exited with an error.",
	},
	"H204": {
		Category: CategoryTailwind,
		Message:  "Unsupported platform",
		Detail:   "No standalone Tailwind CSS binary is published for this OS/architecture.",
	},

	// Dev server errors (H300-H349)

	"H301": {
		Category: CategoryDev,
		Message:  "Dev server failed to start",
		Detail:   "The development server could not bind to the configured address.",
	},
	"H302": {
		Category: CategoryDev,
		Message:  "File watcher failed",
		Detail:   "The file system watcher could not be created or a watched path is invalid.",
	},

	// Deploy errors (H400-H449)

	"H401": {
		Category: CategoryDeploy,
		Message:  "Deploy configuration incomplete",
		Detail:   "Deploying assets requires a bucket in the deploy section of hue.yaml.",
	},
	"H402": {
		Category: CategoryDeploy,
		Message:  "Asset upload failed",
		Detail:   "One or more assets could not be uploaded.",
	},
	"H403": {
		Category: CategoryDeploy,
		Message:  "AWS credentials not found",
		Detail:   "No AWS credentials could be resolved from the environment or shared config.",
	},
}
