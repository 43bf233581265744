package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/docs/ssr/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (E100-E119)

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No ssr.json, ssr.yaml or ssr.yml was found in the project directory or any parent directory.",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Cannot read configuration file",
		Detail:   "The configuration file exists but could not be opened.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be decoded. Check the syntax and the type of each value.",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is outside the accepted range.",
		DocURL:   docBase + "E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json, .yaml or .yml.",
		DocURL:   docBase + "E104",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Cannot write configuration file",
		Detail:   "The configuration file could not be written.",
		DocURL:   docBase + "E105",
	},

	// Rendering (E120-E139)

	"E120": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "A component returned an error or panicked while the page was rendered.",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryRender,
		Message:  "Render timed out",
		Detail:   "The page did not finish rendering before the configured timeout. A component is probably waiting on slow data.",
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryRender,
		Message:  "Unknown page",
		Detail:   "No page is registered for the requested path.",
		DocURL:   docBase + "E122",
	},

	// Export (E140-E159)

	"E140": {
		Category: CategoryExport,
		Message:  "Invalid export target",
		Detail:   "Export targets are a local directory or an s3://bucket/prefix URL.",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryExport,
		Message:  "Export failed",
		Detail:   "A rendered page could not be written to the export store.",
		DocURL:   docBase + "E141",
	},

	// Server and CLI (E160-E179)

	"E160": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error. The address may already be in use.",
		DocURL:   docBase + "E160",
	},
	"E161": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with missing or malformed arguments.",
		DocURL:   docBase + "E161",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
