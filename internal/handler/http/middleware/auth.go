package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token. It runs
// after jwtauth.Verifier, which parses the Authorization header and leaves
// the verification result on the context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Could not validate credentials")
				return
			}

			// Only access tokens open the API.
			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.Unauthorized(w, "Could not validate credentials")
				return
			}
			if sub, _ := claims["sub"].(string); sub == "" {
				response.Unauthorized(w, "Could not validate credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
