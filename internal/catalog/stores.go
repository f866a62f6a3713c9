package catalog

import (
	"github.com/locallibrary/catalog/internal/entities"
)

// The store interfaces below are the repository contracts the workflows
// depend on. internal/database provides the SQLite-backed implementations;
// lookups signal a missing record by wrapping database.ErrNotFound, and any
// other error is a persistence failure propagated unchanged.

// AuthorStore defines author repository operations.
type AuthorStore interface {
	GetByID(id uint) (*entities.Author, error)
	GetAll() ([]entities.Author, error)
	FindByName(firstName, familyName string) (*entities.Author, error)
	Create(author *entities.Author) error
	Delete(id uint) error
	Count() (int64, error)
}

// BookStore defines book repository operations.
type BookStore interface {
	GetByID(id uint) (*entities.Book, error)
	GetAll() ([]entities.Book, error)
	GetByAuthor(authorID uint) ([]entities.Book, error)
	GetByGenre(genreID uint) ([]entities.Book, error)
	Create(book *entities.Book) error
	Delete(id uint) error
	Count() (int64, error)
}

// GenreStore defines genre repository operations.
type GenreStore interface {
	GetByID(id uint) (*entities.Genre, error)
	GetAll() ([]entities.Genre, error)
	FindByName(name string) (*entities.Genre, error)
	Create(genre *entities.Genre) error
	Delete(id uint) error
	Count() (int64, error)
}

// InstanceStore defines book-instance repository operations.
type InstanceStore interface {
	GetByID(id uint) (*entities.BookInstance, error)
	GetAll() ([]entities.BookInstance, error)
	GetByBook(bookID uint) ([]entities.BookInstance, error)
	Create(instance *entities.BookInstance) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status entities.InstanceStatus) (int64, error)
}
