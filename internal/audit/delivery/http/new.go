package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/audit"
	"library-lending/pkg/log"
)

// Handler is the public interface for the audit HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc audit.UseCase
}

// New creates a new HTTP handler for the audit log.
func New(l log.Logger, uc audit.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
