package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

type fakeVerifier struct {
	tokens map[string]string // token -> user id
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (string, error) {
	id, ok := f.tokens[token]
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

type fakeRoles struct {
	roles map[string]domain.Role
	err   error
}

func (f *fakeRoles) Lookup(_ context.Context, userID string) (domain.Role, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	role, ok := f.roles[userID]
	return role, ok, nil
}

func newTestGate(roles map[string]domain.Role) *Gate {
	verifier := &fakeVerifier{tokens: map[string]string{
		"tok-admin":    "u-admin",
		"tok-staff":    "u-staff",
		"tok-customer": "u-customer",
		"tok-norole":   "u-norole",
	}}
	return NewGate(verifier, &fakeRoles{roles: roles}, zap.NewNop())
}

func staffRoles() map[string]domain.Role {
	return map[string]domain.Role{
		"u-admin":    domain.RoleAdmin,
		"u-staff":    domain.RoleStaff,
		"u-customer": "customer",
	}
}

func TestAuthorizeMissingToken(t *testing.T) {
	gate := newTestGate(staffRoles())
	_, err := gate.Authorize(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAuthorizeUnverifiableToken(t *testing.T) {
	gate := newTestGate(staffRoles())
	_, err := gate.Authorize(context.Background(), "tok-garbage")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAuthorizeCustomerRoleForbidden(t *testing.T) {
	gate := newTestGate(staffRoles())
	_, err := gate.Authorize(context.Background(), "tok-customer")
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestAuthorizeNoRoleRecordForbidden(t *testing.T) {
	gate := newTestGate(staffRoles())
	_, err := gate.Authorize(context.Background(), "tok-norole")
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestAuthorizeStaffAndAdmin(t *testing.T) {
	gate := newTestGate(staffRoles())

	caller, err := gate.Authorize(context.Background(), "tok-admin")
	require.NoError(t, err)
	assert.Equal(t, domain.Caller{UserID: "u-admin", Role: domain.RoleAdmin}, caller)

	caller, err = gate.Authorize(context.Background(), "tok-staff")
	require.NoError(t, err)
	assert.Equal(t, domain.Caller{UserID: "u-staff", Role: domain.RoleStaff}, caller)
}

func TestAuthorizeRoleStoreFailure(t *testing.T) {
	verifier := &fakeVerifier{tokens: map[string]string{"tok": "u1"}}
	gate := NewGate(verifier, &fakeRoles{err: domain.ErrTransport}, zap.NewNop())

	_, err := gate.Authorize(context.Background(), "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
	assert.False(t, errors.Is(err, domain.ErrForbidden))
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Basic abc"))
}
