package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/otp"
	"library-lending/pkg/log"
)

// Handler is the public interface for the OTP HTTP delivery layer.
type Handler interface {
	Send(c *gin.Context)
	Verify(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc otp.UseCase
}

// New creates a new HTTP handler for the OTP domain.
func New(l log.Logger, uc otp.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
