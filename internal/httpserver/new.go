package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"library-lending/internal/lending"
	"library-lending/internal/otp"
	"library-lending/internal/session"
	"library-lending/pkg/log"
	"library-lending/pkg/notify"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	sessions   *session.Store
	notifier   notify.Sender

	// Domain tunables
	otpConfig     otp.Config
	lendingConfig lending.Config
	staffKey      string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Sessions   *session.Store
	Notifier   notify.Sender

	OTP      otp.Config
	Lending  lending.Config
	StaffKey string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		postgresDB:    cfg.PostgresDB,
		sessions:      cfg.Sessions,
		notifier:      cfg.Notifier,
		otpConfig:     cfg.OTP,
		lendingConfig: cfg.Lending,
		staffKey:      cfg.StaffKey,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	return nil
}
