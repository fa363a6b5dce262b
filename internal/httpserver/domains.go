package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "intelliassist/internal/assistant/delivery/http"
	authHTTP "intelliassist/internal/auth/delivery/http"
	dashboardHTTP "intelliassist/internal/dashboard/delivery/http"
	localtaskHTTP "intelliassist/internal/localtask/delivery/http"
)

// setupDomains wires each domain's HTTP handler onto the shared /api/v1
// group. Use cases are constructed in main; the server only owns transport.
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup) error {
	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC))
	srv.l.Infof(ctx, "Auth domain registered")

	dashboardHTTP.RegisterRoutes(api, dashboardHTTP.New(srv.l, srv.dashboardUC))
	srv.l.Infof(ctx, "Dashboard domain registered")

	localtaskHTTP.RegisterRoutes(api, localtaskHTTP.New(srv.l, srv.localTaskUC))
	srv.l.Infof(ctx, "Local task domain registered")

	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, srv.assistantUC))
	srv.l.Infof(ctx, "Assistant domain registered")

	return nil
}
