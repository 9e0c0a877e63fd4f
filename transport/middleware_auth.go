package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/constant"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// AuthMiddleware resolves a bearer token into the caller identity and roles.
// Requests without a token continue anonymously; RequirePermission decides whether that is allowed.
// A token that is present but invalid is rejected right away.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			session, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			roles, err := userApp.GetRoles(r.Context(), session.UserID)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithCaller(r.Context(), session, roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utilsContext.GetUserID(r.Context()); !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		next(w, r)
	}
}

// RequirePermission rejects anonymous requests with 401 and callers lacking perm with 403.
func RequirePermission(perm constant.Permission, next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		if !constant.HasPermission(utilsContext.GetRoles(r.Context()), perm) {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
		next(w, r)
	})
}

// isPublicPath lists endpoints that never look at the bearer token.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	switch path {
	case "/login", "/register", "/auth/otp/request", "/auth/otp/verify", "/health", "/metrics":
		return true
	}
	return false
}
