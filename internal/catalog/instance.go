package catalog

import (
	"errors"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
	"github.com/locallibrary/catalog/internal/forms"
)

const instanceListPath = "/catalog/bookinstances"

// InstanceWorkflows handles the book-copy list, detail, create, and delete
// flows. Instances have no dependents, so deletes are never blocked.
type InstanceWorkflows struct {
	instances InstanceStore
	books     BookStore
}

func NewInstanceWorkflows(instances InstanceStore, books BookStore) *InstanceWorkflows {
	return &InstanceWorkflows{instances: instances, books: books}
}

// List renders all copies with their books.
func (w *InstanceWorkflows) List() (Outcome, error) {
	list, err := w.instances.GetAll()
	if err != nil {
		return Outcome{}, err
	}
	return Render("bookinstance_list", map[string]any{
		"Title":     "Book Instance List",
		"Instances": list,
	}), nil
}

// Detail renders one copy with its book. No aggregation is needed: the
// repository resolves the owning book in the same read.
func (w *InstanceWorkflows) Detail(id uint) (Outcome, error) {
	instance, err := w.instances.GetByID(id)
	if err != nil {
		return Outcome{}, err
	}
	return Render("bookinstance_detail", map[string]any{
		"Title":    "Book Instance",
		"Instance": instance,
	}), nil
}

// CreateForm renders the copy form with the book choices.
func (w *InstanceWorkflows) CreateForm() (Outcome, error) {
	books, err := w.books.GetAll()
	if err != nil {
		return Outcome{}, err
	}
	return Render("bookinstance_form", map[string]any{
		"Title":    "Create BookInstance",
		"Books":    books,
		"Statuses": entities.InstanceStatuses,
	}), nil
}

// Create validates the submission; invalid input re-renders the form with
// the book choices, the collected errors, and the escaped inputs.
func (w *InstanceWorkflows) Create(form forms.InstanceForm) (Outcome, error) {
	instance, result := form.Validate()
	if !result.Valid() {
		books, err := w.books.GetAll()
		if err != nil {
			return Outcome{}, err
		}
		return Render("bookinstance_form", map[string]any{
			"Title":    "Create BookInstance",
			"Books":    books,
			"Statuses": entities.InstanceStatuses,
			"Values":   result.Values,
			"Errors":   result.Errors,
		}), nil
	}

	if err := w.instances.Create(instance); err != nil {
		return Outcome{}, err
	}
	return RedirectWithFlash(instance.URL(), "Book instance created"), nil
}

// DeleteForm renders the delete confirmation. A missing copy redirects to
// the copy list.
func (w *InstanceWorkflows) DeleteForm(id uint) (Outcome, error) {
	instance, err := w.instances.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(instanceListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return Render("bookinstance_delete", map[string]any{
		"Title":    "Delete BookInstance",
		"Instance": instance,
	}), nil
}

// Delete removes the copy. Nothing references instances, so the removal
// always proceeds when the record exists.
func (w *InstanceWorkflows) Delete(id uint) (Outcome, error) {
	if err := w.instances.Delete(id); err != nil && !errors.Is(err, database.ErrNotFound) {
		return Outcome{}, err
	}
	return RedirectWithFlash(instanceListPath, "Book instance deleted"), nil
}

// UpdateForm is not implemented.
func (w *InstanceWorkflows) UpdateForm(id uint) (Outcome, error) {
	return notImplemented("BookInstance update"), nil
}

// Update is not implemented.
func (w *InstanceWorkflows) Update(id uint, form forms.InstanceForm) (Outcome, error) {
	return notImplemented("BookInstance update"), nil
}
