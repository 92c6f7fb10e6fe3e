package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Filesystem Errors (E100-E109)
	// ============================================

	"E101": {
		Category:   CategoryFilesystem,
		Message:    "Root directory not found",
		Detail:     "Route discovery starts from a directory that must exist.",
		Suggestion: "Check that the path exists and is readable",
	},
	"E102": {
		Category:   CategoryFilesystem,
		Message:    "Directory could not be read",
		Detail:     "A directory below the root could not be listed or stat'ed. Discovery stops at the first unreadable entry.",
		Suggestion: "Check the permissions of the directory",
	},

	// ============================================
	// Module Errors (E110-E119)
	// ============================================

	"E110": {
		Category:   CategoryModule,
		Message:    "Endpoint module failed to load",
		Detail:     "A file selected as a route candidate could not be loaded. A single bad file aborts discovery unless an OnLoadError hook is set.",
		Suggestion: "Fix the module or exclude it with fileExclusionPatterns",
	},
	"E111": {
		Category:   CategoryModule,
		Message:    "No loader for file extension",
		Detail:     "The inclusion pattern selected a file type no module loader is registered for.",
		Suggestion: "Narrow fileInclusionPattern or register a loader for the extension",
	},
	"E112": {
		Category: CategoryModule,
		Message:  "Plugin symbol is not usable",
		Detail:   "A plugin exported a symbol with an HTTP method name that is neither a function nor a pointer to one.",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Check that the fsroutes config file is valid JSON or YAML",
	},
	"E121": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create fsroutes.json or pass --config",
	},

	// ============================================
	// Pattern Errors (E130-E139)
	// ============================================

	"E130": {
		Category:   CategoryPattern,
		Message:    "Invalid glob pattern",
		Detail:     "Include and exclude patterns use doublestar syntax: ** for any depth, {a,b} for alternation, [abc] for classes.",
		Suggestion: "Check brackets and braces are balanced",
	},

	// ============================================
	// Mount Errors (E140-E149)
	// ============================================

	"E140": {
		Category:   CategoryMount,
		Message:    "Route cannot be mounted",
		Detail:     "A mounted route needs an HTTP method token, distinct parameter names and an http.Handler or func(http.ResponseWriter, *http.Request) handler.",
		Suggestion: "Run 'fsroutes routes --validate' or mount the route yourself",
	},

	// ============================================
	// Cancellation (E150)
	// ============================================

	"E150": {
		Category: CategoryCancel,
		Message:  "Route discovery cancelled",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
