package forms

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/locallibrary/catalog/internal/entities"
)

var nameCharacters = regexp.MustCompile(`^[A-Za-z ]+$`)

// AuthorForm carries the raw submission for creating an author. The single
// name field is split on whitespace: first token becomes the first name,
// last token the family name.
type AuthorForm struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"`
}

var authorFieldOrder = []string{"name", "date_of_birth", "date_of_death"}

func (f AuthorForm) rules() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Name empty"),
			validation.Match(nameCharacters).Error("Name must be alphabet letters"),
		),
		validation.Field(&f.DateOfBirth,
			validation.Date(isoDateFormat).Error("Invalid date of birth"),
		),
		validation.Field(&f.DateOfDeath,
			validation.Date(isoDateFormat).Error("Invalid date of death"),
		),
	)
}

// Validate applies the author rules. On success the returned record holds
// the split name and parsed dates; on failure the Result carries every
// field error and the escaped inputs for re-rendering.
func (f AuthorForm) Validate() (*entities.Author, Result) {
	f.Name = strings.TrimSpace(f.Name)

	result := Result{Values: escapeValues(map[string]string{
		"name":          f.Name,
		"date_of_birth": f.DateOfBirth,
		"date_of_death": f.DateOfDeath,
	})}
	result.Errors = orderedErrors(f.rules(), authorFieldOrder)

	firstName, familyName := splitName(f.Name)
	if len(firstName) > 100 || len(familyName) > 100 {
		result.Errors = append(result.Errors, FieldError{
			Field:   "name",
			Message: "Names must be 100 characters or fewer",
		})
	}

	if !result.Valid() {
		return nil, result
	}

	return &entities.Author{
		FirstName:   firstName,
		FamilyName:  familyName,
		DateOfBirth: parseDate(f.DateOfBirth),
		DateOfDeath: parseDate(f.DateOfDeath),
	}, result
}

// splitName divides a full name into its first and family parts: the first
// whitespace-separated token and the last. A single token serves as both.
func splitName(name string) (firstName, familyName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}
