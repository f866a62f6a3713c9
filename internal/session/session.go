// Package session manages cookie sessions, used by the catalog for one-shot
// flash notices shown after create and delete redirects.
package session

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/locallibrary/catalog/internal/config"
)

const flashKey = "flash"

// Manager wraps scs.SessionManager with catalog-specific helpers.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager persisting to the application's
// SQLite database. The sqlDB parameter is the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// PutFlash stores a one-shot notice to display on the next render.
func (m *Manager) PutFlash(r *http.Request, message string) {
	m.Put(r.Context(), flashKey, message)
}

// PopFlash retrieves and clears the pending notice, if any.
func (m *Manager) PopFlash(r *http.Request) string {
	return m.PopString(r.Context(), flashKey)
}
