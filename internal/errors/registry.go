package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates. The ranges mirror the
// reactive core and renderer's own taxonomy (E101-E103, E201-E202) plus the
// codes fibre's CLI and domhost transport raise directly.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Reactive core errors (E101-E119)
	// ============================================

	"E101": {
		Category: CategoryReactive,
		Message:  "Unhandled panic in reactive code",
		Detail:   "Reactive code was misused in a way the runtime refuses, such as an effect writing a signal while strict effect mode is set to panic. Panics raised by application code are not wrapped in this error; they propagate unchanged.",
		DocURL:   "https://fibre.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryReactive,
		Message:  "Cycle limit exceeded",
		Detail:   "A cell recomputed more times than the scheduler's configured limit within a single flush, almost always because an effect writes back to one of its own dependencies.",
		DocURL:   "https://fibre.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryReactive,
		Message:  "Disposed cell accessed",
		Detail:   "A signal, derived value, or effect was read or written after its owner was disposed. This usually means a stale closure outlived the component that created it.",
		DocURL:   "https://fibre.dev/docs/errors/E103",
	},

	// ============================================
	// Renderer errors (E201-E219)
	// ============================================

	"E201": {
		Category: CategoryRender,
		Message:  "Hydration mismatch",
		Detail:   "The markup a domhost server sent differs from what the client's render produced for the same component tree. Only reported in dev mode.",
		DocURL:   "https://fibre.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryRender,
		Message:  "Platform unavailable",
		Detail:   "render.Mount or termhost.Run was called without a usable Platform backend wired up.",
		DocURL:   "https://fibre.dev/docs/errors/E202",
	},

	// ============================================
	// Protocol errors (E220-E239)
	// ============================================

	"E220": {
		Category: CategoryProtocol,
		Message:  "WebSocket connection failed",
		Detail:   "The browser client could not establish or maintain its WebSocket connection to the domhost server.",
		DocURL:   "https://fibre.dev/docs/errors/E220",
	},
	"E221": {
		Category: CategoryProtocol,
		Message:  "Invalid patch message",
		Detail:   "A message from the browser client could not be decoded by the domhost server. The client and server binaries may be out of sync.",
		DocURL:   "https://fibre.dev/docs/errors/E221",
	},
	"E222": {
		Category: CategoryProtocol,
		Message:  "Unknown event type",
		Detail:   "An incoming client event referenced an event type the server doesn't recognize.",
		DocURL:   "https://fibre.dev/docs/errors/E222",
	},

	// ============================================
	// Configuration errors (E240-E259)
	// ============================================

	"E241": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The --port flag must be between 1 and 65535.",
		DocURL:   "https://fibre.dev/docs/errors/E241",
	},

	// ============================================
	// CLI errors (E260-E279)
	// ============================================

	"E260": {
		Category: CategoryCLI,
		Message:  "Server failed to start",
		Detail:   "The dev server's HTTP listener could not bind to the requested host and port — it may already be in use.",
		DocURL:   "https://fibre.dev/docs/errors/E260",
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
