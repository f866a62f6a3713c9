package http

import (
	"github.com/gin-gonic/gin"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/forms"
	"github.com/locallibrary/catalog/internal/session"
)

type AuthorController struct {
	workflows *catalog.AuthorWorkflows
	sessions  *session.Manager
}

func NewAuthorController(workflows *catalog.AuthorWorkflows, sessions *session.Manager) *AuthorController {
	return &AuthorController{workflows: workflows, sessions: sessions}
}

// List handles GET /catalog/authors
func (ac *AuthorController) List(c *gin.Context) {
	outcome, err := ac.workflows.List()
	applyOutcome(c, ac.sessions, outcome, err)
}

// Detail handles GET /catalog/author/:id
func (ac *AuthorController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ac.workflows.Detail(id)
	applyOutcome(c, ac.sessions, outcome, err)
}

// CreateForm handles GET /catalog/author/create
func (ac *AuthorController) CreateForm(c *gin.Context) {
	outcome, err := ac.workflows.CreateForm()
	applyOutcome(c, ac.sessions, outcome, err)
}

// Create handles POST /catalog/author/create
func (ac *AuthorController) Create(c *gin.Context) {
	form := forms.AuthorForm{
		Name:        c.PostForm("name"),
		DateOfBirth: c.PostForm("date_of_birth"),
		DateOfDeath: c.PostForm("date_of_death"),
	}
	outcome, err := ac.workflows.Create(form)
	applyOutcome(c, ac.sessions, outcome, err)
}

// DeleteForm handles GET /catalog/author/:id/delete
func (ac *AuthorController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ac.workflows.DeleteForm(id)
	applyOutcome(c, ac.sessions, outcome, err)
}

// Delete handles POST /catalog/author/:id/delete
func (ac *AuthorController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ac.workflows.Delete(id)
	applyOutcome(c, ac.sessions, outcome, err)
}

// UpdateForm handles GET /catalog/author/:id/update
func (ac *AuthorController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ac.workflows.UpdateForm(id)
	applyOutcome(c, ac.sessions, outcome, err)
}

// Update handles POST /catalog/author/:id/update
func (ac *AuthorController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ac.workflows.Update(id, forms.AuthorForm{
		Name:        c.PostForm("name"),
		DateOfBirth: c.PostForm("date_of_birth"),
		DateOfDeath: c.PostForm("date_of_death"),
	})
	applyOutcome(c, ac.sessions, outcome, err)
}
