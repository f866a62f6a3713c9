package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/session"
)

// RouterConfig carries everything the router needs, keeping NewRouter's
// signature stable as dependencies grow.
type RouterConfig struct {
	Database      *database.Database
	Sessions      *session.Manager
	CSRFSecret    []byte
	SecureCookies bool
	TemplatesPath string
	StaticPath    string
	Version       string

	Index     *catalog.IndexWorkflow
	Authors   *catalog.AuthorWorkflows
	Books     *catalog.BookWorkflows
	Genres    *catalog.GenreWorkflows
	Instances *catalog.InstanceWorkflows
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CSRF must run before session so that session context is layered on
	// top of CSRF's request replacement.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	index := NewIndexController(cfg.Index, cfg.Sessions)
	authors := NewAuthorController(cfg.Authors, cfg.Sessions)
	books := NewBookController(cfg.Books, cfg.Sessions)
	genres := NewGenreController(cfg.Genres, cfg.Sessions)
	instances := NewInstanceController(cfg.Instances, cfg.Sessions)

	router.GET("/health", health.Status)
	router.GET("/", index.Root)
	router.GET("/catalog", index.Home)

	router.GET("/catalog/authors", authors.List)
	router.GET("/catalog/author/create", authors.CreateForm)
	router.POST("/catalog/author/create", authors.Create)
	router.GET("/catalog/author/:id", authors.Detail)
	router.GET("/catalog/author/:id/delete", authors.DeleteForm)
	router.POST("/catalog/author/:id/delete", authors.Delete)
	router.GET("/catalog/author/:id/update", authors.UpdateForm)
	router.POST("/catalog/author/:id/update", authors.Update)

	router.GET("/catalog/books", books.List)
	router.GET("/catalog/book/create", books.CreateForm)
	router.POST("/catalog/book/create", books.Create)
	router.GET("/catalog/book/:id", books.Detail)
	router.GET("/catalog/book/:id/delete", books.DeleteForm)
	router.POST("/catalog/book/:id/delete", books.Delete)
	router.GET("/catalog/book/:id/update", books.UpdateForm)
	router.POST("/catalog/book/:id/update", books.Update)

	router.GET("/catalog/genres", genres.List)
	router.GET("/catalog/genre/create", genres.CreateForm)
	router.POST("/catalog/genre/create", genres.Create)
	router.GET("/catalog/genre/:id", genres.Detail)
	router.GET("/catalog/genre/:id/delete", genres.DeleteForm)
	router.POST("/catalog/genre/:id/delete", genres.Delete)
	router.GET("/catalog/genre/:id/update", genres.UpdateForm)
	router.POST("/catalog/genre/:id/update", genres.Update)

	router.GET("/catalog/bookinstances", instances.List)
	router.GET("/catalog/bookinstance/create", instances.CreateForm)
	router.POST("/catalog/bookinstance/create", instances.Create)
	router.GET("/catalog/bookinstance/:id", instances.Detail)
	router.GET("/catalog/bookinstance/:id/delete", instances.DeleteForm)
	router.POST("/catalog/bookinstance/:id/delete", instances.Delete)
	router.GET("/catalog/bookinstance/:id/update", instances.UpdateForm)
	router.POST("/catalog/bookinstance/:id/update", instances.Update)

	return router
}
