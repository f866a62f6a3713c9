package http

import (
	"github.com/gin-gonic/gin"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/forms"
	"github.com/locallibrary/catalog/internal/session"
)

type GenreController struct {
	workflows *catalog.GenreWorkflows
	sessions  *session.Manager
}

func NewGenreController(workflows *catalog.GenreWorkflows, sessions *session.Manager) *GenreController {
	return &GenreController{workflows: workflows, sessions: sessions}
}

// List handles GET /catalog/genres
func (gc *GenreController) List(c *gin.Context) {
	outcome, err := gc.workflows.List()
	applyOutcome(c, gc.sessions, outcome, err)
}

// Detail handles GET /catalog/genre/:id
func (gc *GenreController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := gc.workflows.Detail(id)
	applyOutcome(c, gc.sessions, outcome, err)
}

// CreateForm handles GET /catalog/genre/create
func (gc *GenreController) CreateForm(c *gin.Context) {
	outcome, err := gc.workflows.CreateForm()
	applyOutcome(c, gc.sessions, outcome, err)
}

// Create handles POST /catalog/genre/create
func (gc *GenreController) Create(c *gin.Context) {
	outcome, err := gc.workflows.Create(forms.GenreForm{Name: c.PostForm("name")})
	applyOutcome(c, gc.sessions, outcome, err)
}

// DeleteForm handles GET /catalog/genre/:id/delete
func (gc *GenreController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := gc.workflows.DeleteForm(id)
	applyOutcome(c, gc.sessions, outcome, err)
}

// Delete handles POST /catalog/genre/:id/delete
func (gc *GenreController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := gc.workflows.Delete(id)
	applyOutcome(c, gc.sessions, outcome, err)
}

// UpdateForm handles GET /catalog/genre/:id/update
func (gc *GenreController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := gc.workflows.UpdateForm(id)
	applyOutcome(c, gc.sessions, outcome, err)
}

// Update handles POST /catalog/genre/:id/update
func (gc *GenreController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := gc.workflows.Update(id, forms.GenreForm{Name: c.PostForm("name")})
	applyOutcome(c, gc.sessions, outcome, err)
}
