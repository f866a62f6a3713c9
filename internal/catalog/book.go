package catalog

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
	"github.com/locallibrary/catalog/internal/forms"
)

const bookListPath = "/catalog/books"

// BookWorkflows handles the book list, detail, create, and delete flows.
type BookWorkflows struct {
	books     BookStore
	authors   AuthorStore
	genres    GenreStore
	instances InstanceStore
}

func NewBookWorkflows(books BookStore, authors AuthorStore, genres GenreStore, instances InstanceStore) *BookWorkflows {
	return &BookWorkflows{books: books, authors: authors, genres: genres, instances: instances}
}

// List renders all books sorted by title.
func (w *BookWorkflows) List() (Outcome, error) {
	books, err := w.books.GetAll()
	if err != nil {
		return Outcome{}, err
	}
	return Render("book_list", map[string]any{
		"Title": "Book List",
		"Books": books,
	}), nil
}

// aggregate fetches a book and its copies concurrently.
func (w *BookWorkflows) aggregate(id uint) (*entities.Book, []entities.BookInstance, error) {
	var (
		book   *entities.Book
		copies []entities.BookInstance
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		book, err = w.books.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		copies, err = w.instances.GetByBook(id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return book, copies, nil
}

// Detail renders one book with its author, genres, and copies.
func (w *BookWorkflows) Detail(id uint) (Outcome, error) {
	book, copies, err := w.aggregate(id)
	if err != nil {
		return Outcome{}, err
	}
	return Render("book_detail", map[string]any{
		"Title":     book.Title,
		"Book":      book,
		"Instances": copies,
	}), nil
}

// formChoices fetches the author and genre lists for the book form
// concurrently.
func (w *BookWorkflows) formChoices() ([]entities.Author, []entities.Genre, error) {
	var (
		authors []entities.Author
		genres  []entities.Genre
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		authors, err = w.authors.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = w.genres.GetAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return authors, genres, nil
}

// CreateForm renders the book form with author and genre choices.
func (w *BookWorkflows) CreateForm() (Outcome, error) {
	authors, genres, err := w.formChoices()
	if err != nil {
		return Outcome{}, err
	}
	return Render("book_form", map[string]any{
		"Title":   "Create Book",
		"Authors": authors,
		"Genres":  genres,
	}), nil
}

// Create validates the submission; invalid input re-renders the form with
// its choices, the collected errors, and the escaped inputs. Books carry no
// natural key, so no duplicate check runs before insert.
func (w *BookWorkflows) Create(form forms.BookForm) (Outcome, error) {
	book, result := form.Validate()
	if !result.Valid() {
		authors, genres, err := w.formChoices()
		if err != nil {
			return Outcome{}, err
		}
		return Render("book_form", map[string]any{
			"Title":   "Create Book",
			"Authors": authors,
			"Genres":  genres,
			"Values":  result.Values,
			"Errors":  result.Errors,
		}), nil
	}

	if err := w.books.Create(book); err != nil {
		return Outcome{}, err
	}
	return RedirectWithFlash(book.URL(), "Book created"), nil
}

// DeleteForm renders the delete confirmation, listing copies that would
// block the removal.
func (w *BookWorkflows) DeleteForm(id uint) (Outcome, error) {
	book, copies, err := w.aggregate(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(bookListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return Render("book_delete", map[string]any{
		"Title":     "Delete Book",
		"Book":      book,
		"Instances": copies,
	}), nil
}

// Delete removes the book only when no copies reference it.
func (w *BookWorkflows) Delete(id uint) (Outcome, error) {
	book, copies, err := w.aggregate(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(bookListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	if len(copies) > 0 {
		return Render("book_delete", map[string]any{
			"Title":     "Delete Book",
			"Book":      book,
			"Instances": copies,
		}), nil
	}

	if err := w.books.Delete(id); err != nil && !errors.Is(err, database.ErrNotFound) {
		return Outcome{}, err
	}
	return RedirectWithFlash(bookListPath, "Book deleted"), nil
}

// UpdateForm is not implemented.
func (w *BookWorkflows) UpdateForm(id uint) (Outcome, error) {
	return notImplemented("Book update"), nil
}

// Update is not implemented.
func (w *BookWorkflows) Update(id uint, form forms.BookForm) (Outcome, error) {
	return notImplemented("Book update"), nil
}
