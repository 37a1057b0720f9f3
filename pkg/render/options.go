package render

// RenderOptions carry per-request data that renderers use without mutating
// the form model.
type RenderOptions struct {
	// Action is the URL the form posts to. Empty posts back to the current
	// page.
	Action string
	// Title overrides the page heading.
	Title string
	// Errors holds messages keyed by input name. Unknown names are shown at
	// form level.
	Errors map[string][]string
	// FormErrors holds messages that belong to no single input.
	FormErrors []string
	// Hidden lists extra hidden inputs such as CSRF tokens.
	Hidden map[string]string
}
