package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	auditHTTP "library-lending/internal/audit/delivery/http"
	auditRepo "library-lending/internal/audit/repository/postgre"
	auditUC "library-lending/internal/audit/usecase"
	catalogHTTP "library-lending/internal/catalog/delivery/http"
	catalogRepo "library-lending/internal/catalog/repository/postgre"
	catalogUC "library-lending/internal/catalog/usecase"
	lendingHTTP "library-lending/internal/lending/delivery/http"
	lendingRepo "library-lending/internal/lending/repository/postgre"
	lendingUC "library-lending/internal/lending/usecase"
	memberHTTP "library-lending/internal/member/delivery/http"
	memberRepo "library-lending/internal/member/repository/postgre"
	memberUC "library-lending/internal/member/usecase"
	"library-lending/internal/middleware"
	otpHTTP "library-lending/internal/otp/delivery/http"
	otpRepo "library-lending/internal/otp/repository/postgre"
	otpUC "library-lending/internal/otp/usecase"
	returnsHTTP "library-lending/internal/returns/delivery/http"
	returnsUC "library-lending/internal/returns/usecase"
)

// setupOTPDomain wires the OTP verifier under /api/v1/otp.
func (srv *HTTPServer) setupOTPDomain(ctx context.Context, api *gin.RouterGroup) {
	repo := otpRepo.New(srv.postgresDB, srv.l)
	members := memberRepo.New(srv.postgresDB, srv.l)

	uc := otpUC.New(repo, members, srv.sessions, srv.notifier, srv.otpConfig, srv.l)
	h := otpHTTP.New(srv.l, uc)

	otpHTTP.RegisterRoutes(api.Group("/otp"), h)
	srv.l.Infof(ctx, "OTP domain registered")
}

// setupCatalogDomain wires the item catalog under /api/v1/items.
func (srv *HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := catalogRepo.New(srv.postgresDB, srv.l)

	uc := catalogUC.New(repo, srv.l)
	h := catalogHTTP.New(srv.l, uc)

	catalogHTTP.RegisterRoutes(api.Group("/items"), h, mw)
	srv.l.Infof(ctx, "Catalog domain registered")
}

// setupMemberDomain wires the member directory under /api/v1/members.
func (srv *HTTPServer) setupMemberDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := memberRepo.New(srv.postgresDB, srv.l)

	uc := memberUC.New(repo, srv.l)
	h := memberHTTP.New(srv.l, uc)

	memberHTTP.RegisterRoutes(api.Group("/members"), h, mw)
	srv.l.Infof(ctx, "Member domain registered")
}

// setupLendingDomains wires the lending engine, the return desk and
// the audit log. They share one request group: the return desk hangs
// off /requests/:token/return and the audit log reads what the other
// two write.
func (srv *HTTPServer) setupLendingDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := lendingRepo.New(srv.postgresDB, srv.l)
	members := memberRepo.New(srv.postgresDB, srv.l)
	audit := auditRepo.New(srv.postgresDB, srv.l)

	uc := lendingUC.New(repo, members, audit, srv.sessions, srv.notifier, srv.lendingConfig, srv.l)
	h := lendingHTTP.New(srv.l, uc)

	requests := api.Group("/requests")
	lendingHTTP.RegisterRoutes(requests, h, mw)

	retUC := returnsUC.New(uc, repo, audit, srv.l)
	retH := returnsHTTP.New(srv.l, retUC)
	returnsHTTP.RegisterRoutes(requests, retH, mw)

	audUC := auditUC.New(audit, srv.l)
	audH := auditHTTP.New(srv.l, audUC)
	auditHTTP.RegisterRoutes(api.Group("/audit"), audH, mw)

	srv.l.Infof(ctx, "Lending, returns and audit domains registered")
}
