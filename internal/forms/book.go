package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/locallibrary/catalog/internal/entities"
)

// BookForm carries the raw submission for creating a book. Author is the
// owning author's identifier; Genres holds zero or more genre identifiers
// from the form's checkbox group.
type BookForm struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Author  string   `json:"author"`
	Genres  []string `json:"genre"`
}

var bookFieldOrder = []string{"title", "summary", "author", "genre"}

func (f BookForm) rules() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("Title must not be empty"),
		),
		validation.Field(&f.Summary,
			validation.Required.Error("Summary must not be empty"),
		),
		validation.Field(&f.Author,
			validation.Required.Error("Author must be specified"),
		),
	)
}

// Validate applies the book rules and resolves the submitted identifiers.
func (f BookForm) Validate() (*entities.Book, Result) {
	f.Title = strings.TrimSpace(f.Title)
	f.Summary = strings.TrimSpace(f.Summary)
	f.Author = strings.TrimSpace(f.Author)

	result := Result{Values: escapeValues(map[string]string{
		"title":   f.Title,
		"summary": f.Summary,
		"author":  f.Author,
		"genre":   strings.Join(f.Genres, ","),
	})}
	result.Errors = orderedErrors(f.rules(), bookFieldOrder)

	var authorID uint
	if f.Author != "" {
		var ok bool
		if authorID, ok = parseID(f.Author); !ok {
			result.Errors = append(result.Errors, FieldError{
				Field:   "author",
				Message: "Author must be a valid identifier",
			})
		}
	}

	var genres []entities.Genre
	for _, raw := range f.Genres {
		id, ok := parseID(raw)
		if !ok {
			result.Errors = append(result.Errors, FieldError{
				Field:   "genre",
				Message: "Genre must be a valid identifier",
			})
			break
		}
		genres = append(genres, entities.Genre{ID: id})
	}

	if !result.Valid() {
		return nil, result
	}

	return &entities.Book{
		Title:    f.Title,
		Summary:  f.Summary,
		AuthorID: authorID,
		Genres:   genres,
	}, result
}
