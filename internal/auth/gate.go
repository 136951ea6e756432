package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

// TokenVerifier resolves a bearer token to a user id via the identity
// provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// RoleStore reads roles from the trusted server-side role table.
type RoleStore interface {
	Lookup(ctx context.Context, userID string) (domain.Role, bool, error)
}

// Gate is the authorization gate in front of every privileged read and
// write: verify the credential, then resolve the role server-side.
type Gate struct {
	verifier TokenVerifier
	roles    RoleStore
	logger   *zap.Logger
}

func NewGate(verifier TokenVerifier, roles RoleStore, logger *zap.Logger) *Gate {
	return &Gate{verifier: verifier, roles: roles, logger: logger}
}

// Authorize returns the caller context for a staff-capable credential.
// Missing or unverifiable tokens fail with ErrUnauthorized; verified users
// without an admin/staff role record fail with ErrForbidden. Both are
// terminal for the request.
func (g *Gate) Authorize(ctx context.Context, token string) (domain.Caller, error) {
	if token == "" {
		return domain.Caller{}, domain.ErrUnauthorized
	}

	userID, err := g.verifier.Verify(ctx, token)
	if err != nil {
		return domain.Caller{}, err
	}

	role, ok, err := g.roles.Lookup(ctx, userID)
	if err != nil {
		g.logger.Error("role lookup failed", zap.String("user_id", userID), zap.Error(err))
		return domain.Caller{}, fmt.Errorf("verify permissions: %w", err)
	}
	if !ok || !role.Staff() {
		return domain.Caller{}, domain.ErrForbidden
	}

	return domain.Caller{UserID: userID, Role: role}, nil
}
