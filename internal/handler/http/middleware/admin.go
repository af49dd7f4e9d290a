package middleware

import (
	"net/http"

	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

// AdminOnly restricts a route to callers whose token carries the admin
// flag. Role comes from the verified claims of this request, never from
// shared state.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := jwt.IdentityFromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Could not validate credentials")
			return
		}

		if !identity.IsAdmin {
			response.Forbidden(w, "Not enough permissions. Admin access required.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
