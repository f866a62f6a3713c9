// Package books provides database operations for Book records.
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a book with its author and genres.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genres").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("book %d: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves all books with their authors, sorted by title.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("title ASC").Find(&books).Error
	return books, err
}

// GetByAuthor retrieves all books written by the given author.
func (r *Repository) GetByAuthor(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author_id = ?", authorID).Order("title ASC").Find(&books).Error
	return books, err
}

// GetByGenre retrieves all books classified under the given genre.
func (r *Repository) GetByGenre(genreID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("title ASC").
		Find(&books).Error
	return books, err
}

// Create persists a new book, assigning its ID. Genre associations on the
// record are persisted through the join table in the same call.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// Delete removes a book by ID and clears its genre associations.
func (r *Repository) Delete(id uint) error {
	book := entities.Book{ID: id}
	if err := r.db.Model(&book).Association("Genres").Clear(); err != nil {
		return err
	}
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book %d: %w", id, database.ErrNotFound)
	}
	return nil
}

// Count returns the total number of books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
