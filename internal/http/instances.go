package http

import (
	"github.com/gin-gonic/gin"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/forms"
	"github.com/locallibrary/catalog/internal/session"
)

type InstanceController struct {
	workflows *catalog.InstanceWorkflows
	sessions  *session.Manager
}

func NewInstanceController(workflows *catalog.InstanceWorkflows, sessions *session.Manager) *InstanceController {
	return &InstanceController{workflows: workflows, sessions: sessions}
}

func (ic *InstanceController) instanceForm(c *gin.Context) forms.InstanceForm {
	return forms.InstanceForm{
		Book:    c.PostForm("book"),
		Imprint: c.PostForm("imprint"),
		Status:  c.PostForm("status"),
		DueBack: c.PostForm("due_back"),
	}
}

// List handles GET /catalog/bookinstances
func (ic *InstanceController) List(c *gin.Context) {
	outcome, err := ic.workflows.List()
	applyOutcome(c, ic.sessions, outcome, err)
}

// Detail handles GET /catalog/bookinstance/:id
func (ic *InstanceController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ic.workflows.Detail(id)
	applyOutcome(c, ic.sessions, outcome, err)
}

// CreateForm handles GET /catalog/bookinstance/create
func (ic *InstanceController) CreateForm(c *gin.Context) {
	outcome, err := ic.workflows.CreateForm()
	applyOutcome(c, ic.sessions, outcome, err)
}

// Create handles POST /catalog/bookinstance/create
func (ic *InstanceController) Create(c *gin.Context) {
	outcome, err := ic.workflows.Create(ic.instanceForm(c))
	applyOutcome(c, ic.sessions, outcome, err)
}

// DeleteForm handles GET /catalog/bookinstance/:id/delete
func (ic *InstanceController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ic.workflows.DeleteForm(id)
	applyOutcome(c, ic.sessions, outcome, err)
}

// Delete handles POST /catalog/bookinstance/:id/delete
func (ic *InstanceController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ic.workflows.Delete(id)
	applyOutcome(c, ic.sessions, outcome, err)
}

// UpdateForm handles GET /catalog/bookinstance/:id/update
func (ic *InstanceController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ic.workflows.UpdateForm(id)
	applyOutcome(c, ic.sessions, outcome, err)
}

// Update handles POST /catalog/bookinstance/:id/update
func (ic *InstanceController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	outcome, err := ic.workflows.Update(id, ic.instanceForm(c))
	applyOutcome(c, ic.sessions, outcome, err)
}
