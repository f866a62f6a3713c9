package catalog

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
	"github.com/locallibrary/catalog/internal/forms"
)

const genreListPath = "/catalog/genres"

// GenreWorkflows handles the genre list, detail, create, and delete flows.
type GenreWorkflows struct {
	genres GenreStore
	books  BookStore
}

func NewGenreWorkflows(genres GenreStore, books BookStore) *GenreWorkflows {
	return &GenreWorkflows{genres: genres, books: books}
}

// List renders all genres sorted by name.
func (w *GenreWorkflows) List() (Outcome, error) {
	genres, err := w.genres.GetAll()
	if err != nil {
		return Outcome{}, err
	}
	return Render("genre_list", map[string]any{
		"Title":  "Genre List",
		"Genres": genres,
	}), nil
}

// aggregate fetches a genre and the books classified under it concurrently.
func (w *GenreWorkflows) aggregate(id uint) (*entities.Genre, []entities.Book, error) {
	var (
		genre *entities.Genre
		books []entities.Book
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		genre, err = w.genres.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = w.books.GetByGenre(id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return genre, books, nil
}

// Detail renders one genre with the books classified under it.
func (w *GenreWorkflows) Detail(id uint) (Outcome, error) {
	genre, books, err := w.aggregate(id)
	if err != nil {
		return Outcome{}, err
	}
	return Render("genre_detail", map[string]any{
		"Title":      genre.Name,
		"Genre":      genre,
		"GenreBooks": books,
	}), nil
}

// CreateForm renders the empty genre form.
func (w *GenreWorkflows) CreateForm() (Outcome, error) {
	return Render("genre_form", map[string]any{
		"Title": "Create Genre",
	}), nil
}

// Create validates the submission, then checks for an existing genre of the
// same name; a match redirects to the existing record.
func (w *GenreWorkflows) Create(form forms.GenreForm) (Outcome, error) {
	genre, result := form.Validate()
	if !result.Valid() {
		return Render("genre_form", map[string]any{
			"Title":  "Create Genre",
			"Values": result.Values,
			"Errors": result.Errors,
		}), nil
	}

	existing, err := w.genres.FindByName(genre.Name)
	if err == nil {
		return Redirect(existing.URL()), nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return Outcome{}, err
	}

	if err := w.genres.Create(genre); err != nil {
		return Outcome{}, err
	}
	return RedirectWithFlash(genre.URL(), "Genre created"), nil
}

// DeleteForm renders the delete confirmation, listing books that would
// block the removal.
func (w *GenreWorkflows) DeleteForm(id uint) (Outcome, error) {
	genre, books, err := w.aggregate(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(genreListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return Render("genre_delete", map[string]any{
		"Title":      "Delete Genre",
		"Genre":      genre,
		"GenreBooks": books,
	}), nil
}

// Delete removes the genre only when no books reference it.
func (w *GenreWorkflows) Delete(id uint) (Outcome, error) {
	genre, books, err := w.aggregate(id)
	if errors.Is(err, database.ErrNotFound) {
		return Redirect(genreListPath), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	if len(books) > 0 {
		return Render("genre_delete", map[string]any{
			"Title":      "Delete Genre",
			"Genre":      genre,
			"GenreBooks": books,
		}), nil
	}

	if err := w.genres.Delete(id); err != nil && !errors.Is(err, database.ErrNotFound) {
		return Outcome{}, err
	}
	return RedirectWithFlash(genreListPath, "Genre deleted"), nil
}

// UpdateForm is not implemented.
func (w *GenreWorkflows) UpdateForm(id uint) (Outcome, error) {
	return notImplemented("Genre update"), nil
}

// Update is not implemented.
func (w *GenreWorkflows) Update(id uint, form forms.GenreForm) (Outcome, error) {
	return notImplemented("Genre update"), nil
}
