package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/returns"
	"library-lending/pkg/log"
)

// Handler is the public interface for the returns HTTP delivery layer.
type Handler interface {
	Lookup(c *gin.Context)
	Confirm(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc returns.UseCase
}

// New creates a new HTTP handler for the return desk.
func New(l log.Logger, uc returns.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
