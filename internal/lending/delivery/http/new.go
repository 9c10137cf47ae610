package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/lending"
	"library-lending/pkg/log"
)

// Handler is the public interface for the lending HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
	Detail(c *gin.Context)
	Approve(c *gin.Context)
	Reject(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc lending.UseCase
}

// New creates a new HTTP handler for the lending domain.
func New(l log.Logger, uc lending.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
