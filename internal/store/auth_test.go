// internal/store/auth_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

const testAdminEmail = "admin@storefront.local"

func newTestAuth(t *testing.T) *Auth {
	t.Helper()
	return NewAuth(testAdminEmail, nil, persist.NewMemoryStore(), testLogger())
}

func TestAuthSignupLogsIn(t *testing.T) {
	a := newTestAuth(t)

	user, err := a.Signup("Sarah Johnson", "sarah@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, user.Avatar)
	assert.True(t, a.IsAuthenticated())

	current, ok := a.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuthSignupAdminEmailGetsAdminRole(t *testing.T) {
	a := newTestAuth(t)

	user, err := a.Signup("Store Admin", testAdminEmail, "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthSignupDuplicateEmailCaseInsensitive(t *testing.T) {
	a := newTestAuth(t)

	_, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)

	_, err = a.Signup("Imposter", "SARAH@Example.COM", "other456")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, a.Users(), 1)
}

func TestAuthLogin(t *testing.T) {
	a := newTestAuth(t)
	_, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)
	a.Logout()

	user, err := a.Login("Sarah@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "sarah@example.com", user.Email)
	assert.True(t, a.IsAuthenticated())
}

func TestAuthLoginWrongPasswordLeavesSessionUntouched(t *testing.T) {
	a := newTestAuth(t)
	_, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)
	a.Logout()

	_, err = a.Login("sarah@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, a.IsAuthenticated())

	_, err = a.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthPasswordsAreHashed(t *testing.T) {
	a := newTestAuth(t)

	user, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)

	stored, err := a.GetUser(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestAuthUpdateMirrorsSession(t *testing.T) {
	a := newTestAuth(t)
	user, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)

	name := "Sarah J."
	_, err = a.Update(user.ID, UserUpdate{Name: &name})
	require.NoError(t, err)

	current, ok := a.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Sarah J.", current.Name)
}

func TestAuthUpdateEmailCollisionRefused(t *testing.T) {
	a := newTestAuth(t)
	_, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)
	user, err := a.AddUser("Michael", "michael@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	taken := "SARAH@Example.COM"
	_, err = a.Update(user.ID, UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	stored, err := a.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "michael@example.com", stored.Email)

	// Re-submitting the account's own email is not a collision.
	own := "Michael@Example.com"
	updated, err := a.Update(user.ID, UserUpdate{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "Michael@Example.com", updated.Email)
}

func TestAuthUpdatePasswordChangesLogin(t *testing.T) {
	a := newTestAuth(t)
	user, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)

	password := "changed456"
	_, err = a.Update(user.ID, UserUpdate{Password: &password})
	require.NoError(t, err)
	a.Logout()

	_, err = a.Login("sarah@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login("sarah@example.com", "changed456")
	assert.NoError(t, err)
}

func TestAuthProtectedAdminAccount(t *testing.T) {
	a := newTestAuth(t)
	admin, err := a.Signup("Store Admin", testAdminEmail, "admin123")
	require.NoError(t, err)

	demoted := models.RoleUser
	_, err = a.Update(admin.ID, UserUpdate{Role: &demoted})
	assert.ErrorIs(t, err, ErrProtectedUser)

	assert.ErrorIs(t, a.Delete(admin.ID), ErrProtectedUser)

	// Non-role edits to the protected account still go through.
	name := "Head Admin"
	updated, err := a.Update(admin.ID, UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Head Admin", updated.Name)
}

func TestAuthDeleteUser(t *testing.T) {
	a := newTestAuth(t)
	user, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, a.Delete(user.ID))
	_, err = a.GetUser(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, a.Delete(user.ID), ErrUserNotFound)
}

func TestAuthAddUserDoesNotLogIn(t *testing.T) {
	a := newTestAuth(t)

	_, err := a.AddUser("Michael", "michael@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	assert.False(t, a.IsAuthenticated())
	assert.Len(t, a.Users(), 1)
}

func TestAuthSurvivesReload(t *testing.T) {
	snapshots := persist.NewMemoryStore()

	a := NewAuth(testAdminEmail, nil, snapshots, testLogger())
	user, err := a.Signup("Sarah", "sarah@example.com", "secret123")
	require.NoError(t, err)

	reloaded := NewAuth(testAdminEmail, nil, snapshots, testLogger())
	assert.True(t, reloaded.IsAuthenticated())

	current, ok := reloaded.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)

	// The password hash rides along in the snapshot.
	_, err = reloaded.Login("sarah@example.com", "secret123")
	assert.NoError(t, err)
}

func TestAuthSeedDirectoryUsedOnFirstRun(t *testing.T) {
	seed := []models.User{{
		ID:    "user-1",
		Name:  "Sarah Johnson",
		Email: "sarah@example.com",
		Role:  models.RoleUser,
	}}
	require.NoError(t, seed[0].SetPassword("user123"))

	a := NewAuth(testAdminEmail, seed, persist.NewMemoryStore(), testLogger())

	assert.Len(t, a.Users(), 1)
	_, err := a.Login("sarah@example.com", "user123")
	assert.NoError(t, err)
}
