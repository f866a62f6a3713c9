package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locallibrary/catalog/internal/entities"
)

func TestBookForm_Validate(t *testing.T) {
	t.Run("valid submission resolves references", func(t *testing.T) {
		form := BookForm{
			Title:   "Emma",
			Summary: "A comedy of manners.",
			Author:  "4",
			Genres:  []string{"1", "3"},
		}

		book, result := form.Validate()
		require.True(t, result.Valid())
		assert.Equal(t, "Emma", book.Title)
		assert.Equal(t, uint(4), book.AuthorID)
		require.Len(t, book.Genres, 2)
		assert.Equal(t, uint(1), book.Genres[0].ID)
		assert.Equal(t, uint(3), book.Genres[1].ID)
	})

	t.Run("missing required fields collect together", func(t *testing.T) {
		book, result := BookForm{}.Validate()

		assert.Nil(t, book)
		require.Len(t, result.Errors, 3)
		assert.Equal(t, "title", result.Errors[0].Field)
		assert.Equal(t, "summary", result.Errors[1].Field)
		assert.Equal(t, "author", result.Errors[2].Field)
	})

	t.Run("malformed author id is rejected", func(t *testing.T) {
		form := BookForm{Title: "Emma", Summary: "x", Author: "not-an-id"}

		book, result := form.Validate()
		assert.Nil(t, book)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "author", result.Errors[0].Field)
	})

	t.Run("malformed genre id is rejected", func(t *testing.T) {
		form := BookForm{Title: "Emma", Summary: "x", Author: "1", Genres: []string{"oops"}}

		book, result := form.Validate()
		assert.Nil(t, book)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "genre", result.Errors[0].Field)
	})

	t.Run("genres are optional", func(t *testing.T) {
		book, result := BookForm{Title: "Emma", Summary: "x", Author: "1"}.Validate()

		require.True(t, result.Valid())
		assert.Empty(t, book.Genres)
	})
}

func TestInstanceForm_Validate(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		form := InstanceForm{
			Book:    "7",
			Imprint: "Penguin Classics, 2003",
			Status:  "Loaned",
			DueBack: "2024-06-30",
		}

		instance, result := form.Validate()
		require.True(t, result.Valid())
		assert.Equal(t, uint(7), instance.BookID)
		assert.Equal(t, entities.StatusLoaned, instance.Status)
		require.NotNil(t, instance.DueBack)
		assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), *instance.DueBack)
	})

	t.Run("empty status defaults to maintenance", func(t *testing.T) {
		instance, result := InstanceForm{Book: "7", Imprint: "x"}.Validate()

		require.True(t, result.Valid())
		assert.Equal(t, entities.StatusMaintenance, instance.Status)
		assert.Nil(t, instance.DueBack)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		instance, result := InstanceForm{Book: "7", Imprint: "x", Status: "Vaporized"}.Validate()

		assert.Nil(t, instance)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "status", result.Errors[0].Field)
	})

	t.Run("invalid due date is rejected", func(t *testing.T) {
		instance, result := InstanceForm{Book: "7", Imprint: "x", DueBack: "30/06/2024"}.Validate()

		assert.Nil(t, instance)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "due_back", result.Errors[0].Field)
		assert.Equal(t, "Invalid date", result.Errors[0].Message)
	})

	t.Run("missing book and imprint collect together", func(t *testing.T) {
		instance, result := InstanceForm{}.Validate()

		assert.Nil(t, instance)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "book", result.Errors[0].Field)
		assert.Equal(t, "Book must be specified", result.Errors[0].Message)
		assert.Equal(t, "imprint", result.Errors[1].Field)
	})
}

func TestGenreForm_Validate(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		genre, result := GenreForm{Name: "Fantasy"}.Validate()

		require.True(t, result.Valid())
		assert.Equal(t, "Fantasy", genre.Name)
	})

	t.Run("too short name is rejected", func(t *testing.T) {
		genre, result := GenreForm{Name: "yo"}.Validate()

		assert.Nil(t, genre)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "name", result.Errors[0].Field)
	})

	t.Run("echoed values are escaped", func(t *testing.T) {
		_, result := GenreForm{Name: "<b>"}.Validate()

		assert.Equal(t, "&lt;b&gt;", result.Values["name"])
	})
}
