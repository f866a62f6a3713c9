// Package instances provides database operations for BookInstance records.
package instances

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
)

// Repository handles all book-instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a book instance with its book.
func (r *Repository) GetByID(id uint) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	err := r.db.Preload("Book").First(&instance, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("book instance %d: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetAll retrieves all book instances with their books.
func (r *Repository) GetAll() ([]entities.BookInstance, error) {
	var list []entities.BookInstance
	err := r.db.Preload("Book").Order("id ASC").Find(&list).Error
	return list, err
}

// GetByBook retrieves all copies of the given book.
func (r *Repository) GetByBook(bookID uint) ([]entities.BookInstance, error) {
	var list []entities.BookInstance
	err := r.db.Where("book_id = ?", bookID).Order("id ASC").Find(&list).Error
	return list, err
}

// GetOverdue retrieves loaned copies whose due date has passed.
func (r *Repository) GetOverdue(now time.Time) ([]entities.BookInstance, error) {
	var list []entities.BookInstance
	err := r.db.Preload("Book").
		Where("status = ? AND due_back IS NOT NULL AND due_back < ?", entities.StatusLoaned, now).
		Order("due_back ASC").
		Find(&list).Error
	return list, err
}

// Create persists a new book instance, assigning its ID.
func (r *Repository) Create(instance *entities.BookInstance) error {
	return r.db.Create(instance).Error
}

// Delete removes a book instance by ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.BookInstance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book instance %d: %w", id, database.ErrNotFound)
	}
	return nil
}

// Count returns the total number of book instances.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookInstance{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of instances with the given status.
func (r *Repository) CountByStatus(status entities.InstanceStatus) (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookInstance{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
