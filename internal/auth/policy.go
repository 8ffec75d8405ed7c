package auth

import (
	"context"
	"errors"
	"fmt"

	"manufacturer-api/internal/repository"
)

// ErrDenied is returned when a policy decision comes back deny.
var ErrDenied = errors.New("forbidden")

// Policy is an explicit authorization decision point: given an authenticated
// identity, the resource being touched and the action on it, allow or deny.
type Policy interface {
	Authorize(ctx context.Context, identity, resource, action string) error
}

// RoleAuthorizer grants every admin-reserved action to callers whose stored
// role is "admin". An identity with no user document is a deny, not an error.
type RoleAuthorizer struct {
	users repository.UserRepository
}

func NewRoleAuthorizer(users repository.UserRepository) *RoleAuthorizer {
	return &RoleAuthorizer{users: users}
}

const RoleAdmin = "admin"

func (a *RoleAuthorizer) Authorize(ctx context.Context, identity, resource, action string) error {
	user, err := a.users.FindByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDenied
		}
		return fmt.Errorf("load role for %s: %w", identity, err)
	}

	if user.Role != RoleAdmin {
		return ErrDenied
	}

	return nil
}
