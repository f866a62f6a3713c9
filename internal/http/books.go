package http

import (
	"github.com/gin-gonic/gin"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/forms"
	"github.com/locallibrary/catalog/internal/session"
)

type BookController struct {
	workflows *catalog.BookWorkflows
	sessions  *session.Manager
}

func NewBookController(workflows *catalog.BookWorkflows, sessions *session.Manager) *BookController {
	return &BookController{workflows: workflows, sessions: sessions}
}

func (bc *BookController) bookForm(c *gin.Context) forms.BookForm {
	return forms.BookForm{
		Title:   c.PostForm("title"),
		Summary: c.PostForm("summary"),
		Author:  c.PostForm("author"),
		Genres:  c.PostFormArray("genres"),
	}
}

// List handles GET /catalog/books
func (bc *BookController) List(c *gin.Context) {
	outcome, err := bc.workflows.List()
	applyOutcome(c, bc.sessions, outcome, err)
}

// Detail handles GET /catalog/book/:id
func (bc *BookController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := bc.workflows.Detail(id)
	applyOutcome(c, bc.sessions, outcome, err)
}

// CreateForm handles GET /catalog/book/create
func (bc *BookController) CreateForm(c *gin.Context) {
	outcome, err := bc.workflows.CreateForm()
	applyOutcome(c, bc.sessions, outcome, err)
}

// Create handles POST /catalog/book/create
func (bc *BookController) Create(c *gin.Context) {
	outcome, err := bc.workflows.Create(bc.bookForm(c))
	applyOutcome(c, bc.sessions, outcome, err)
}

// DeleteForm handles GET /catalog/book/:id/delete
func (bc *BookController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := bc.workflows.DeleteForm(id)
	applyOutcome(c, bc.sessions, outcome, err)
}

// Delete handles POST /catalog/book/:id/delete
func (bc *BookController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := bc.workflows.Delete(id)
	applyOutcome(c, bc.sessions, outcome, err)
}

// UpdateForm handles GET /catalog/book/:id/update
func (bc *BookController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := bc.workflows.UpdateForm(id)
	applyOutcome(c, bc.sessions, outcome, err)
}

// Update handles POST /catalog/book/:id/update
func (bc *BookController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := bc.workflows.Update(id, bc.bookForm(c))
	applyOutcome(c, bc.sessions, outcome, err)
}
