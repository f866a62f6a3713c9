// Package authors provides database operations for Author records.
package authors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves an author by ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("author %d: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves all authors sorted by family name ascending.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("family_name ASC, first_name ASC").Find(&authors).Error
	return authors, err
}

// FindByName retrieves the author with the exact first and family name.
// Used for duplicate detection before insert.
func (r *Repository) FindByName(firstName, familyName string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("first_name = ? AND family_name = ?", firstName, familyName).
		First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("author %q %q: %w", firstName, familyName, database.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Create persists a new author, assigning its ID.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// Delete removes an author by ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Author{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("author %d: %w", id, database.ErrNotFound)
	}
	return nil
}

// Count returns the total number of authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}
