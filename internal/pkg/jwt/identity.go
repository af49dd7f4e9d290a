package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Identity is the caller extracted from verified token claims. It travels
// with the request context, so role checks never consult shared state.
type Identity struct {
	EmployeeID string
	IsAdmin    bool
}

// IdentityFromContext extracts the caller identity from the verified JWT
// claims placed on the context by jwtauth.Verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["sub"].(string)
	if !ok || employeeID == "" {
		return Identity{}, fmt.Errorf("sub claim is missing or invalid")
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return Identity{EmployeeID: employeeID, IsAdmin: isAdmin}, nil
}
