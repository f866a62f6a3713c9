package catalog

import (
	"golang.org/x/sync/errgroup"

	"github.com/locallibrary/catalog/internal/entities"
)

// IndexWorkflow assembles the catalog home page: record counts for every
// entity, gathered concurrently.
type IndexWorkflow struct {
	authors   AuthorStore
	books     BookStore
	genres    GenreStore
	instances InstanceStore
}

func NewIndexWorkflow(authors AuthorStore, books BookStore, genres GenreStore, instances InstanceStore) *IndexWorkflow {
	return &IndexWorkflow{authors: authors, books: books, genres: genres, instances: instances}
}

// Home renders the catalog index with entity counts.
func (w *IndexWorkflow) Home() (Outcome, error) {
	var (
		bookCount      int64
		instanceCount  int64
		availableCount int64
		authorCount    int64
		genreCount     int64
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		bookCount, err = w.books.Count()
		return err
	})
	g.Go(func() error {
		var err error
		instanceCount, err = w.instances.Count()
		return err
	})
	g.Go(func() error {
		var err error
		availableCount, err = w.instances.CountByStatus(entities.StatusAvailable)
		return err
	})
	g.Go(func() error {
		var err error
		authorCount, err = w.authors.Count()
		return err
	})
	g.Go(func() error {
		var err error
		genreCount, err = w.genres.Count()
		return err
	})
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	return Render("index", map[string]any{
		"Title":                  "Local Library Home",
		"BookCount":              bookCount,
		"BookInstanceCount":      instanceCount,
		"AvailableInstanceCount": availableCount,
		"AuthorCount":            authorCount,
		"GenreCount":             genreCount,
	}), nil
}
