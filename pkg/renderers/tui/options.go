package tui

// OutputFormat controls how the collected form is serialized.
type OutputFormat string

const (
	// OutputFormatYAML emits the barcodes file.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatJSON emits the collected form model as JSON.
	OutputFormatJSON OutputFormat = "json"
)

// Theme captures optional prefixes the renderer adds to printed messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithMismatches sets the mismatch allowance written for constant sets.
func WithMismatches(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.mismatches = n
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
