// Package http adapts catalog workflows to Gin: it parses route and form
// input, invokes a workflow, and applies the resulting outcome as a rendered
// view, a redirect, or an error page.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/session"
)

// parseIDParam extracts a record identifier from the route. On failure it
// renders the error page and reports false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error", gin.H{
			"Title":   "Bad Request",
			"Message": "Invalid identifier: " + raw,
		})
		return 0, false
	}
	return uint(id), true
}

// applyOutcome turns a workflow result into an HTTP response. Redirect
// outcomes stash their flash notice in the session; render outcomes pick up
// any pending notice and the CSRF token for forms.
func applyOutcome(c *gin.Context, sessions *session.Manager, outcome catalog.Outcome, err error) {
	if err != nil {
		renderError(c, err)
		return
	}

	if outcome.IsRedirect() {
		if outcome.Flash != "" && sessions != nil {
			sessions.PutFlash(c.Request, outcome.Flash)
		}
		c.Redirect(http.StatusFound, outcome.RedirectTo)
		return
	}

	context := gin.H{}
	for key, value := range outcome.Context {
		context[key] = value
	}
	if sessions != nil {
		if flash := sessions.PopFlash(c.Request); flash != "" {
			context["Flash"] = flash
		}
	}
	if token, ok := c.Get(contextKeyCSRFToken); ok {
		context["CSRFToken"] = token
	}
	c.HTML(http.StatusOK, outcome.View, context)
}

// renderError maps workflow errors onto the generic error page: 404 for
// missing records, 500 for everything else. Internals are logged, never
// shown to the client.
func renderError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		c.HTML(http.StatusNotFound, "error", gin.H{
			"Title":   "Not Found",
			"Message": "The requested record was not found",
		})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("workflow failed")
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   "Server Error",
		"Message": "Something went wrong handling the request",
	})
}
