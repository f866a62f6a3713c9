package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/locallibrary/catalog/internal/entities"
)

// InstanceForm carries the raw submission for creating a book instance.
type InstanceForm struct {
	Book    string `json:"book"`
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
	DueBack string `json:"due_back"`
}

var instanceFieldOrder = []string{"book", "imprint", "status", "due_back"}

func (f InstanceForm) rules() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Book,
			validation.Required.Error("Book must be specified"),
		),
		validation.Field(&f.Imprint,
			validation.Required.Error("Imprint must be specified"),
		),
		validation.Field(&f.Status,
			validation.By(func(value interface{}) error {
				raw, _ := value.(string)
				if raw == "" || entities.InstanceStatus(raw).IsValid() {
					return nil
				}
				return validation.NewError("validation_invalid_status", "Status is not recognized")
			}),
		),
		validation.Field(&f.DueBack,
			validation.Date(isoDateFormat).Error("Invalid date"),
		),
	)
}

// Validate applies the instance rules. An empty status defaults to
// Maintenance, matching a freshly catalogued copy.
func (f InstanceForm) Validate() (*entities.BookInstance, Result) {
	f.Book = strings.TrimSpace(f.Book)
	f.Imprint = strings.TrimSpace(f.Imprint)
	f.Status = strings.TrimSpace(f.Status)

	result := Result{Values: escapeValues(map[string]string{
		"book":     f.Book,
		"imprint":  f.Imprint,
		"status":   f.Status,
		"due_back": f.DueBack,
	})}
	result.Errors = orderedErrors(f.rules(), instanceFieldOrder)

	var bookID uint
	if f.Book != "" {
		var ok bool
		if bookID, ok = parseID(f.Book); !ok {
			result.Errors = append(result.Errors, FieldError{
				Field:   "book",
				Message: "Book must be a valid identifier",
			})
		}
	}

	if !result.Valid() {
		return nil, result
	}

	status := entities.InstanceStatus(f.Status)
	if f.Status == "" {
		status = entities.StatusMaintenance
	}

	return &entities.BookInstance{
		BookID:  bookID,
		Imprint: f.Imprint,
		Status:  status,
		DueBack: parseDate(f.DueBack),
	}, result
}
