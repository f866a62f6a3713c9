package instances

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.BookInstance{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return db, repo, cleanup
}

func createTestBook(t *testing.T, db *gorm.DB, title string) *entities.Book {
	t.Helper()
	author := &entities.Author{FirstName: "Test", FamilyName: "Author"}
	require.NoError(t, db.Create(author).Error)
	book := &entities.Book{Title: title, Summary: "s", AuthorID: author.ID}
	require.NoError(t, db.Create(book).Error)
	return book
}

func TestRepository_Create(t *testing.T) {
	t.Run("persists the copy with its status", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		book := createTestBook(t, db, "Emma")
		instance := &entities.BookInstance{
			BookID:  book.ID,
			Imprint: "First edition",
			Status:  entities.StatusAvailable,
		}
		require.NoError(t, repo.Create(instance))
		assert.NotZero(t, instance.ID)

		stored, err := repo.GetByID(instance.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusAvailable, stored.Status)
		assert.Equal(t, "Emma", stored.Book.Title)
	})
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("returns ErrNotFound for a missing copy", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.GetByID(42)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_GetByBook(t *testing.T) {
	t.Run("returns only the book's copies", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		emma := createTestBook(t, db, "Emma")
		other := createTestBook(t, db, "Persuasion")
		require.NoError(t, repo.Create(&entities.BookInstance{BookID: emma.ID, Imprint: "a"}))
		require.NoError(t, repo.Create(&entities.BookInstance{BookID: emma.ID, Imprint: "b"}))
		require.NoError(t, repo.Create(&entities.BookInstance{BookID: other.ID, Imprint: "c"}))

		copies, err := repo.GetByBook(emma.ID)
		require.NoError(t, err)
		assert.Len(t, copies, 2)
	})
}

func TestRepository_GetOverdue(t *testing.T) {
	t.Run("returns loaned copies past their due date", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		book := createTestBook(t, db, "Emma")
		now := time.Now()
		past := now.AddDate(0, 0, -7)
		future := now.AddDate(0, 0, 7)

		require.NoError(t, repo.Create(&entities.BookInstance{
			BookID: book.ID, Imprint: "overdue", Status: entities.StatusLoaned, DueBack: &past,
		}))
		require.NoError(t, repo.Create(&entities.BookInstance{
			BookID: book.ID, Imprint: "on time", Status: entities.StatusLoaned, DueBack: &future,
		}))
		require.NoError(t, repo.Create(&entities.BookInstance{
			BookID: book.ID, Imprint: "shelved", Status: entities.StatusAvailable,
		}))

		overdue, err := repo.GetOverdue(now)
		require.NoError(t, err)
		require.Len(t, overdue, 1)
		assert.Equal(t, "overdue", overdue[0].Imprint)
		assert.Equal(t, "Emma", overdue[0].Book.Title)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("removes the copy", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		book := createTestBook(t, db, "Emma")
		instance := &entities.BookInstance{BookID: book.ID, Imprint: "a"}
		require.NoError(t, repo.Create(instance))

		require.NoError(t, repo.Delete(instance.ID))

		_, err := repo.GetByID(instance.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("returns ErrNotFound for a missing copy", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		err := repo.Delete(42)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_CountByStatus(t *testing.T) {
	t.Run("counts copies per status", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		book := createTestBook(t, db, "Emma")
		require.NoError(t, repo.Create(&entities.BookInstance{BookID: book.ID, Imprint: "a", Status: entities.StatusAvailable}))
		require.NoError(t, repo.Create(&entities.BookInstance{BookID: book.ID, Imprint: "b", Status: entities.StatusAvailable}))
		require.NoError(t, repo.Create(&entities.BookInstance{BookID: book.ID, Imprint: "c", Status: entities.StatusLoaned}))

		available, err := repo.CountByStatus(entities.StatusAvailable)
		require.NoError(t, err)
		assert.Equal(t, int64(2), available)

		total, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}
