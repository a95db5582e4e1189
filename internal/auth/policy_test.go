package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Casm101/leovegas-technical-test/internal/domain"
)

func TestPolicyDecisionTable(t *testing.T) {
	t.Parallel()

	admin := Claims{UserID: "admin-1", Role: domain.RoleAdmin}
	owner := Claims{UserID: "user-1", Role: domain.RoleUser}
	other := Claims{UserID: "user-2", Role: domain.RoleUser}

	tests := []struct {
		name    string
		decide  func() error
		allowed bool
	}{
		{"read admin", func() error { return CanReadUser(admin, "user-1") }, true},
		{"read owner", func() error { return CanReadUser(owner, "user-1") }, true},
		{"read other user", func() error { return CanReadUser(other, "user-1") }, false},

		{"list admin", func() error { return CanListUsers(admin) }, true},
		{"list user", func() error { return CanListUsers(owner) }, false},

		{"update admin", func() error { return CanUpdateUser(admin, "user-1") }, true},
		{"update owner", func() error { return CanUpdateUser(owner, "user-1") }, true},
		{"update other user", func() error { return CanUpdateUser(other, "user-1") }, false},

		{"delete admin other", func() error { return CanDeleteUser(admin, "user-1") }, true},
		{"delete admin self", func() error { return CanDeleteUser(admin, "admin-1") }, false},
		{"delete owner", func() error { return CanDeleteUser(owner, "user-1") }, false},
		{"delete other user", func() error { return CanDeleteUser(other, "user-1") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decide()
			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrForbidden)
			require.NotEqual(t, domain.ErrForbidden.Error(), err.Error(), "denial should carry a reason")
		})
	}
}
