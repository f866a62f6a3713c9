// Package catalog implements the list, detail, create, and delete workflows
// for each catalog entity.
//
// Workflows compose the validation pipeline, the entity repositories, and
// concurrent aggregation, and terminate in exactly one of three ways: a
// rendered view, a redirect, or an error for the caller's generic handler.
// Repositories are consumed through interfaces declared here, so tests
// substitute in-memory fakes.
package catalog

// Outcome is the terminal result of a successful workflow: either a view to
// render with its context, or a path to redirect to. Flash optionally carries
// a one-shot notice to show after a redirect.
type Outcome struct {
	View       string
	Context    map[string]any
	RedirectTo string
	Flash      string
}

// Render produces a view outcome.
func Render(view string, context map[string]any) Outcome {
	return Outcome{View: view, Context: context}
}

// Redirect produces a redirect outcome.
func Redirect(path string) Outcome {
	return Outcome{RedirectTo: path}
}

// RedirectWithFlash produces a redirect outcome carrying a notice for the
// next render.
func RedirectWithFlash(path, flash string) Outcome {
	return Outcome{RedirectTo: path, Flash: flash}
}

// IsRedirect reports whether the outcome ends in a redirect.
func (o Outcome) IsRedirect() bool {
	return o.RedirectTo != ""
}

// notImplemented is the shared outcome for the stubbed update workflows.
func notImplemented(operation string) Outcome {
	return Render("not_implemented", map[string]any{
		"Title":     "Not implemented",
		"Operation": operation,
	})
}
