package catalog

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
	"github.com/locallibrary/catalog/internal/forms"
)

const authorListPath = "/catalog/authors"

// AuthorWorkflows handles the author list, detail, create, and delete flows.
type AuthorWorkflows struct {
	authors AuthorStore
	books   BookStore
}

func NewAuthorWorkflows(authors AuthorStore, books BookStore) *AuthorWorkflows {
	return &AuthorWorkflows{authors: authors, books: books}
}

// List renders all authors sorted by family name. An empty catalog is a
// normal render, not an error.
func (w *AuthorWorkflows) List() (Outcome, error) {
	authors, err := w.authors.GetAll()
	if err != nil {
		return Outcome{}, err
	}
	return Render("author_list", map[string]any{
		"Title":   "Author List",
		"Authors": authors,
	}), nil
}

// aggregate fetches an author and their books concurrently. The first
// failing read wins; a missing author surfaces as database.ErrNotFound.
func (w *AuthorWorkflows) aggregate(id uint) (*entities.Author, []entities.Book, error) {
	var (
		author *entities.Author
		books  []entities.Book
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		author, err = w.authors.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = w.books.GetByAuthor(id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return author, books, nil
}

// Detail renders one author together with the books they wrote. A missing
// author propagates as a not-found error.
func (w *AuthorWorkflows) Detail(id uint) (Outcome, error) {
	author, books, err := w.aggregate(id)
	if err != nil {
		return Outcome{}, err
	}
	return Render("author_detail", map[string]any{
		"Title":       author.Name(),
		"Author":      author,
		"AuthorBooks": books,
	}), nil
}

// CreateForm renders the empty author form.
func (w *AuthorWorkflows) CreateForm() (Outcome, error) {
	return Render("author_form", map[string]any{
		"Title": "Create Author",
	}), nil
}

// Create validates the submission. Invalid input re-renders the form with
// every collected error and the escaped inputs, persisting nothing. A clean
// submission is first checked against existing authors by exact first and
// family name; a match redirects to the existing record instead of creating
// a second one.
func (w *AuthorWorkflows) Create(form forms.AuthorForm) (Outcome, error) {
	author, result := form.Validate()
	if !result.Valid() {
		return Render("author_form", map[string]any{
			"Title":  "Create Author",
			"Values": result.Values,
			"Errors": result.Errors,
		}), nil
	}

	existing, err := w.authors.FindByName(author.FirstName, author.FamilyName)
	if err == nil {
		return Redirect(existing.URL()), nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return Outcome{}, err
	}

	if err := w.authors.Create(author); err != nil {
		return Outcome{}, err
	}
	return RedirectWithFlash(author.URL(), "Author created"), nil
}

// DeleteForm renders the delete confirmation, listing any books that would
// block the removal. A missing author redirects to the author list.
func (w *AuthorWorkflows) DeleteForm(id uint) (Outcome, error) {
	author, books, err := w.aggregate(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(authorListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return Render("author_delete", map[string]any{
		"Title":       "Delete Author",
		"Author":      author,
		"AuthorBooks": books,
	}), nil
}

// Delete removes the author only when no books reference them. Referencing
// books re-render the confirmation view and leave the record in place; a
// missing author is treated as already deleted.
func (w *AuthorWorkflows) Delete(id uint) (Outcome, error) {
	author, books, err := w.aggregate(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(authorListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	if len(books) > 0 {
		return Render("author_delete", map[string]any{
			"Title":       "Delete Author",
			"Author":      author,
			"AuthorBooks": books,
		}), nil
	}

	if err := w.authors.Delete(id); err != nil && !errors.Is(err, database.ErrNotFound) {
		return Outcome{}, err
	}
	return RedirectWithFlash(authorListPath, "Author deleted"), nil
}

// UpdateForm is not implemented.
func (w *AuthorWorkflows) UpdateForm(id uint) (Outcome, error) {
	return notImplemented("Author update"), nil
}

// Update is not implemented.
func (w *AuthorWorkflows) Update(id uint, form forms.AuthorForm) (Outcome, error) {
	return notImplemented("Author update"), nil
}
