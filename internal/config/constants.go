package config

// DefaultDatabasePath is where the catalog database lives unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./catalog.db"
