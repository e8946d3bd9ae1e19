package middleware

import (
	"context"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/gymcycle/internal/telemetry/tracing"
	"github.com/2beens/gymcycle/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const LoveTokenHeader = "X-LOVE-TOKEN"

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

// LoveAuthHandler guards the inlove routes with the token handed out by /love/unlock.
type LoveAuthHandler struct {
	enabled      bool
	loginChecker loginChecker
	protected    string
	allowedPaths map[string]bool
}

func NewLoveAuthHandler(enabled bool, loginChecker loginChecker) *LoveAuthHandler {
	return &LoveAuthHandler{
		enabled:      enabled,
		loginChecker: loginChecker,
		protected:    "/love/",
		allowedPaths: map[string]bool{
			"/love/unlock": true,
			"/love/quote":  true,
		},
	}
}

func (h *LoveAuthHandler) pathIsProtected(path string) bool {
	return strings.HasPrefix(path, h.protected) && !h.allowedPaths[path]
}

func (h *LoveAuthHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.enabled || r.Method == http.MethodOptions || !h.pathIsProtected(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.love-auth")
			defer span.End()

			authToken := r.Header.Get(LoveTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [love auth] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}
			if !isLogged {
				log.Tracef("[invalid token] [love auth] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
