package till

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role grants access to the operations of the session.
type Role string

const (
	Admin   Role = "admin"
	Cashier Role = "cashier"
)

// ParseRole accepts "admin" and "cashier" ("cajero" is kept for data typed
// in the first version of the till).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return Admin, nil
	case "cashier", "cajero":
		return Cashier, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

// User is an account allowed to open a session.
type User struct {
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
}

// IsAdmin reports whether u has the admin role.
func (u User) IsAdmin() bool { return u.Role == Admin }

// Default account created when there is no credential file.
const (
	DefaultAdminName     = "admin"
	DefaultAdminPassword = "admin"
)

// Users is the credential store.
type Users struct {
	list  []User
	repo  Repository[[]User]
	audit Auditor
}

// NewUsers loads the users from repo. When nothing was ever saved, the store
// is seeded with the default admin account and saved.
func NewUsers(repo Repository[[]User], audit Auditor) (*Users, error) {
	u := &Users{repo: repo, audit: orDiscard(audit)}
	list, err := repo.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		hash, err := HashPassword(DefaultAdminPassword)
		if err != nil {
			return nil, err
		}
		u.list = []User{{Name: DefaultAdminName, PasswordHash: hash, Role: Admin}}
		return u, save("users", repo, u.list)
	case err != nil:
		log.Printf("warning, users cannot be loaded, starting empty: %v", err)
	default:
		u.list = list
	}
	return u, nil
}

// HashPassword returns the bcrypt hash of a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return string(hash), nil
}

// Authenticate returns the user matching name and password.
func (u *Users) Authenticate(name, password string) (User, error) {
	i := slices.IndexFunc(u.list, func(x User) bool { return x.Name == name })
	if i < 0 {
		return User{}, ErrBadCredentials
	}
	user := u.list[i]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrBadCredentials
	}
	return user, nil
}

// Login prompts for a name and a password until they match a user, at most
// attempts times.
func (u *Users) Login(p Prompter, attempts int) (User, error) {
	for range attempts {
		name, err := p.Prompt("User name: ")
		if err != nil {
			return User{}, err
		}
		password, err := p.Prompt("Password: ")
		if err != nil {
			return User{}, err
		}
		user, err := u.Authenticate(strings.TrimSpace(name), strings.TrimSpace(password))
		if err == nil {
			u.audit.Record("login", fmt.Sprintf("User: %s | Role: %s", user.Name, user.Role))
			return user, nil
		}
		u.audit.Record("login failed", fmt.Sprintf("User: %s", strings.TrimSpace(name)))
	}
	return User{}, ErrTooManyAttempts
}

// Logout records the end of a session.
func (u *Users) Logout(user User) {
	u.audit.Record("logout", fmt.Sprintf("User: %s | Role: %s", user.Name, user.Role))
}

// Register adds a user. Names are unique.
func (u *Users) Register(name, password string, role Role) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, fmt.Errorf("%w: user name is empty", ErrValidation)
	}
	if slices.ContainsFunc(u.list, func(x User) bool { return x.Name == name }) {
		return User{}, fmt.Errorf("%w: user %q already exists", ErrValidation, name)
	}
	if role != Admin && role != Cashier {
		return User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	user := User{Name: name, PasswordHash: hash, Role: role}
	u.list = append(u.list, user)
	u.audit.Record("user registered", fmt.Sprintf("User: %s | Role: %s", name, role))
	return user, save("users", u.repo, u.list)
}

// Names returns the user names in registration order.
func (u *Users) Names() []string {
	names := make([]string, len(u.list))
	for i, x := range u.list {
		names[i] = x.Name
	}
	return names
}
