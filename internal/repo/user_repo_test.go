package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/likeboard/internal/model/user"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

func TestUserRepository_Create(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository, "")

	tests := []struct {
		name       string
		username   string
		password   string
		wantExists bool
		wantErr    error
	}{
		{"create user1", "user1", "user1password-hash", true, nil},
		{"create user2", "user2", "user2password-hash", true, nil},
		{"duplicate username", "user1", "another-password", true, serviceerrs.ErrUniqueViolation},
		{"empty username", "", "some-password", false, serviceerrs.ErrCheckViolation},
		{"empty password", "some-new-user", "", false, serviceerrs.ErrCheckViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &user.User{
				Username:     tt.username,
				PasswordHash: tt.password,
			}
			err := repo.Create(ctx, u)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Positive(t, u.ID)
			}

			exists, err := repo.Exists(ctx, tt.username)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, exists)
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository, "./fixtures/users.sql")

	tests := []struct {
		name     string
		username string
		wantUser user.User
		wantErr  bool
	}{
		{
			name:     "existing user",
			username: "alice",
			wantUser: user.User{
				ID:           1,
				Username:     "alice",
				PasswordHash: "alice-password-hash",
			},
			wantErr: false,
		},
		{
			name:     "case sensitive",
			username: "Alice",
			wantUser: user.User{},
			wantErr:  true,
		},
		{
			name:     "non-existing user",
			username: "no-such-user",
			wantUser: user.User{},
			wantErr:  true,
		},
		{
			name:     "empty username",
			username: "",
			wantUser: user.User{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := repo.FindByUsername(ctx, tt.username)
			if tt.wantErr {
				require.ErrorIs(t, err, serviceerrs.ErrNotFound)
				assert.Equal(t, user.User{}, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, u)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository, "./fixtures/users.sql")

	tests := []struct {
		name    string
		id      int64
		want    user.User
		wantErr bool
	}{
		{"existing user", 2, user.User{
			ID: 2, Username: "bob", PasswordHash: "bob-password-hash"}, false},
		{"not found", 100500, user.User{}, true},
		{"zero ID", 0, user.User{}, true},
		{"negative ID", -1, user.User{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByID(ctx, tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, serviceerrs.ErrNotFound)
				assert.Equal(t, user.User{}, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository, "./fixtures/users.sql")

	require.NoError(t, repo.UpdatePassword(ctx, 3, "carol-new-hash"))
	u, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "carol-new-hash", u.PasswordHash)

	other, err := repo.FindByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "dave-password-hash", other.PasswordHash)

	err = repo.UpdatePassword(ctx, 100500, "whatever")
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)

	err = repo.UpdatePassword(ctx, 3, "")
	require.ErrorIs(t, err, serviceerrs.ErrCheckViolation)
}

func TestUserRepository_DeleteAll(t *testing.T) {
	repo, ctx, pool := setupRepo(t, NewUserRepository, "./fixtures/likes.sql")

	require.NoError(t, repo.DeleteAll(ctx))

	for _, table := range []string{"users", "user_likes"} {
		var count int
		err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, table)
	}
}
