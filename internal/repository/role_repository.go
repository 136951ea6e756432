package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

// RoleRepository reads the access-controlled user_roles table. It must be
// constructed with the elevated service pool: end-user credentials have no
// read rights on that table, and a client-supplied role is never trusted.
type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(servicePool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: servicePool}
}

// Lookup returns the stored role for a user, or ok=false when the user has
// no role record at all.
func (r *RoleRepository) Lookup(ctx context.Context, userID string) (domain.Role, bool, error) {
	var role string
	err := r.pool.QueryRow(ctx, `SELECT role FROM user_roles WHERE user_id = $1`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: lookup role: %v", domain.ErrTransport, err)
	}
	return domain.Role(role), true, nil
}
