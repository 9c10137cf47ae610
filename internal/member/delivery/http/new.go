package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/member"
	"library-lending/pkg/log"
)

// Handler is the public interface for the member HTTP delivery layer.
type Handler interface {
	Check(c *gin.Context)
	Import(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc member.UseCase
}

// New creates a new HTTP handler for the member directory.
func New(l log.Logger, uc member.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
