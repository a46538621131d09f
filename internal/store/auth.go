// internal/store/auth.go
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

// Auth owns the user directory and the active session. The directory is small
// and held in memory; lookups are linear scans.
type Auth struct {
	mu            sync.Mutex
	users         []models.User
	currentID     string
	authenticated bool
	adminEmail    string
	snapshots     persist.Store
	log           *logrus.Logger
}

// userRecord is the persisted shape of a directory entry. The password hash
// is excluded from the API-facing model's JSON, so the snapshot carries it
// explicitly.
type userRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"passwordHash"`
	Role         models.Role `json:"role"`
	Avatar       string      `json:"avatar,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type authSnapshot struct {
	Users           []userRecord `json:"users"`
	CurrentUserID   string       `json:"currentUserId"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// UserUpdate carries partial directory edits; nil fields are left unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	Avatar   *string
	Role     *models.Role
	Password *string
}

// NewAuth loads the directory snapshot, falling back to the seed directory on
// first run. adminEmail designates the permanently protected admin account.
func NewAuth(adminEmail string, seed []models.User, snapshots persist.Store, log *logrus.Logger) *Auth {
	a := &Auth{
		adminEmail: adminEmail,
		snapshots:  snapshots,
		log:        log,
	}

	var snap authSnapshot
	switch err := snapshots.Load(persist.NamespaceAuth, &snap); err {
	case nil:
		for _, rec := range snap.Users {
			if rec.ID == "" || rec.Email == "" {
				continue
			}
			a.users = append(a.users, models.User{
				ID:           rec.ID,
				Name:         rec.Name,
				Email:        rec.Email,
				PasswordHash: rec.PasswordHash,
				Role:         rec.Role,
				Avatar:       rec.Avatar,
				CreatedAt:    rec.CreatedAt,
			})
		}
		a.currentID = snap.CurrentUserID
		a.authenticated = snap.IsAuthenticated && a.findLocked(a.currentID) != nil
	case persist.ErrNotFound:
		a.users = append(a.users, seed...)
		a.persistLocked()
	default:
		log.WithError(err).Warn("Failed to load auth snapshot, starting from seed directory")
		a.users = append(a.users, seed...)
	}
	return a
}

// Login matches the email case-insensitively and verifies the password hash.
// Failure leaves the session untouched.
func (a *Auth) Login(email, password string) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.users {
		if !strings.EqualFold(a.users[i].Email, email) {
			continue
		}
		if err := a.users[i].CheckPassword(password); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		a.currentID = a.users[i].ID
		a.authenticated = true
		a.persistLocked()
		return a.users[i], nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Signup creates a directory entry and logs it in. The designated admin email
// gets the admin role; everyone else is a regular user.
func (a *Auth) Signup(name, email, password string) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.users {
		if strings.EqualFold(a.users[i].Email, email) {
			return models.User{}, ErrEmailTaken
		}
	}

	role := models.RoleUser
	if strings.EqualFold(email, a.adminEmail) {
		role = models.RoleAdmin
	}

	user := models.User{
		ID:        compositeID("user"),
		Name:      name,
		Email:     email,
		Role:      role,
		Avatar:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", name),
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(password); err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	a.users = append(a.users, user)
	a.currentID = user.ID
	a.authenticated = true
	a.persistLocked()
	return user, nil
}

// Logout clears the session only; the directory is untouched.
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentID = ""
	a.authenticated = false
	a.persistLocked()
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

// CurrentUser returns the session holder, if any.
func (a *Auth) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authenticated {
		return models.User{}, false
	}
	if u := a.findLocked(a.currentID); u != nil {
		return *u, true
	}
	return models.User{}, false
}

// GetUser looks up a directory entry by id.
func (a *Auth) GetUser(id string) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if u := a.findLocked(id); u != nil {
		return *u, nil
	}
	return models.User{}, ErrUserNotFound
}

// Users lists the directory. Admin surface.
func (a *Auth) Users() []models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.User(nil), a.users...)
}

// AddUser creates a directory entry without logging it in. Admin surface.
func (a *Auth) AddUser(name, email, password string, role models.Role) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.users {
		if strings.EqualFold(a.users[i].Email, email) {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:        compositeID("user"),
		Name:      name,
		Email:     email,
		Role:      role,
		Avatar:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", name),
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(password); err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	a.users = append(a.users, user)
	a.persistLocked()
	return user, nil
}

// Update merges partial fields into a directory entry. An email change that
// collides with another account is refused, as is changing the role of the
// protected admin account. Edits to the session holder are reflected in the
// session immediately.
func (a *Auth) Update(id string, updates UserUpdate) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user := a.findLocked(id)
	if user == nil {
		return models.User{}, ErrUserNotFound
	}

	if updates.Email != nil {
		for i := range a.users {
			if a.users[i].ID != id && strings.EqualFold(a.users[i].Email, *updates.Email) {
				return models.User{}, ErrEmailTaken
			}
		}
	}

	if updates.Role != nil && *updates.Role != user.Role {
		if strings.EqualFold(user.Email, a.adminEmail) {
			return models.User{}, ErrProtectedUser
		}
		user.Role = *updates.Role
	}
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Avatar != nil {
		user.Avatar = *updates.Avatar
	}
	if updates.Password != nil {
		if err := user.SetPassword(*updates.Password); err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	a.persistLocked()
	return *user, nil
}

// Delete removes a directory entry. The protected admin account is exempt.
// Deleting the session holder does not log the session out.
func (a *Auth) Delete(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.users {
		if a.users[i].ID != id {
			continue
		}
		if strings.EqualFold(a.users[i].Email, a.adminEmail) {
			return ErrProtectedUser
		}
		a.users = append(a.users[:i], a.users[i+1:]...)
		a.persistLocked()
		return nil
	}
	return ErrUserNotFound
}

func (a *Auth) findLocked(id string) *models.User {
	for i := range a.users {
		if a.users[i].ID == id {
			return &a.users[i]
		}
	}
	return nil
}

func (a *Auth) persistLocked() {
	snap := authSnapshot{
		CurrentUserID:   a.currentID,
		IsAuthenticated: a.authenticated,
	}
	for _, u := range a.users {
		snap.Users = append(snap.Users, userRecord{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			Avatar:       u.Avatar,
			CreatedAt:    u.CreatedAt,
		})
	}
	if err := a.snapshots.Save(persist.NamespaceAuth, snap); err != nil {
		a.log.WithError(err).Warn("Failed to persist auth snapshot")
	}
}
