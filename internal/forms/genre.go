package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/locallibrary/catalog/internal/entities"
)

// GenreForm carries the raw submission for creating a genre.
type GenreForm struct {
	Name string `json:"name"`
}

var genreFieldOrder = []string{"name"}

func (f GenreForm) rules() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Genre name required"),
			validation.RuneLength(3, 100).Error("Genre name must be between 3 and 100 characters"),
		),
	)
}

// Validate applies the genre rules.
func (f GenreForm) Validate() (*entities.Genre, Result) {
	f.Name = strings.TrimSpace(f.Name)

	result := Result{Values: escapeValues(map[string]string{"name": f.Name})}
	result.Errors = orderedErrors(f.rules(), genreFieldOrder)

	if !result.Valid() {
		return nil, result
	}

	return &entities.Genre{Name: f.Name}, result
}
