// Package genres provides database operations for Genre records.
package genres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a genre by ID.
func (r *Repository) GetByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("genre %d: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetAll retrieves all genres sorted by name ascending.
func (r *Repository) GetAll() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// FindByName retrieves the genre with the exact name.
// Used for duplicate detection before insert.
func (r *Repository) FindByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("name = ?", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("genre %q: %w", name, database.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// Create persists a new genre, assigning its ID.
func (r *Repository) Create(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

// Delete removes a genre by ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Genre{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("genre %d: %w", id, database.ErrNotFound)
	}
	return nil
}

// Count returns the total number of genres.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Genre{}).Count(&count).Error
	return count, err
}
