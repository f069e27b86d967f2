// Package rest maps the usecases onto the HTTP API consumed by the web
// front end.
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/lexivy/internal/entity"
)

// identityHeader names the user identity for progress namespacing.
// Authentication itself lives in an external backend; the API only keys
// storage by whatever identity the front end presents.
const identityHeader = "X-User"

// Handler bundles the route registrations for the API.
type Handler interface {
	Register(r *gin.RouterGroup)
}

func identity(c *gin.Context, fallback string) string {
	if id := c.GetHeader(identityHeader); id != "" {
		return id
	}
	return fallback
}

func isDomainError(err error) bool {
	for _, domain := range []error{
		entity.ErrWordNotFound,
		entity.ErrSessionNotFound,
		entity.ErrNoQuestions,
		entity.ErrAnswerRequired,
		entity.ErrQuizCompleted,
	} {
		if errors.Is(err, domain) {
			return true
		}
	}
	return false
}

// abortWithError maps domain errors onto HTTP statuses.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrWordNotFound), errors.Is(err, entity.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrNoQuestions):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrAnswerRequired), errors.Is(err, entity.ErrQuizCompleted):
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
