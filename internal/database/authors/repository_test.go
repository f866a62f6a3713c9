package authors

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

func createTestAuthor(t *testing.T, repo *Repository, first, family string) *entities.Author {
	t.Helper()
	author := &entities.Author{FirstName: first, FamilyName: family}
	require.NoError(t, repo.Create(author))
	return author
}

func TestRepository_Create(t *testing.T) {
	t.Run("assigns an ID on insert", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		birth := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
		author := &entities.Author{
			FirstName:   "Jane",
			FamilyName:  "Austen",
			DateOfBirth: &birth,
		}
		require.NoError(t, repo.Create(author))

		assert.NotZero(t, author.ID)

		stored, err := repo.GetByID(author.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", stored.FirstName)
		require.NotNil(t, stored.DateOfBirth)
		assert.True(t, stored.DateOfBirth.Equal(birth))
	})
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("returns ErrNotFound for a missing author", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.GetByID(42)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_GetAll(t *testing.T) {
	t.Run("returns an empty slice on an empty table", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		authors, err := repo.GetAll()
		require.NoError(t, err)
		assert.Empty(t, authors)
	})

	t.Run("sorts by family name then first name", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		createTestAuthor(t, repo, "Patrick", "Rothfuss")
		createTestAuthor(t, repo, "Isaac", "Asimov")
		createTestAuthor(t, repo, "Ben", "Bova")

		authors, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, authors, 3)
		assert.Equal(t, "Asimov", authors[0].FamilyName)
		assert.Equal(t, "Bova", authors[1].FamilyName)
		assert.Equal(t, "Rothfuss", authors[2].FamilyName)
	})
}

func TestRepository_FindByName(t *testing.T) {
	t.Run("finds an exact match", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		created := createTestAuthor(t, repo, "Jane", "Austen")

		found, err := repo.FindByName("Jane", "Austen")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("returns ErrNotFound on a partial match", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		createTestAuthor(t, repo, "Jane", "Austen")

		_, err := repo.FindByName("Jane", "Eyre")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("removes the author", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		author := createTestAuthor(t, repo, "Jane", "Austen")

		require.NoError(t, repo.Delete(author.ID))

		_, err := repo.GetByID(author.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("returns ErrNotFound for a missing author", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		err := repo.Delete(42)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_Count(t *testing.T) {
	t.Run("counts stored authors", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		createTestAuthor(t, repo, "Jane", "Austen")
		createTestAuthor(t, repo, "Isaac", "Asimov")

		count, err = repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
