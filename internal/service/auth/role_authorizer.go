package auth

import (
	"context"
	"fmt"

	"teamdocs/internal/domain"
	"teamdocs/internal/domain/repositories"
	"teamdocs/internal/domain/services"
	"teamdocs/internal/policy"
)

// RoleBasedAuthorizer implements services.TeamAuthorizer by checking the
// caller's membership role against the policy registry.
type RoleBasedAuthorizer struct {
	teamRepo repositories.TeamRepository
	policy   *policy.Registry
}

// NewRoleBasedAuthorizer creates a new role-based authorizer
func NewRoleBasedAuthorizer(teamRepo repositories.TeamRepository, registry *policy.Registry) *RoleBasedAuthorizer {
	return &RoleBasedAuthorizer{
		teamRepo: teamRepo,
		policy:   registry,
	}
}

// Authorize checks that userID holds one of the roles allowed for action in teamID.
// Missing team and insufficient role both yield ErrForbidden.
func (a *RoleBasedAuthorizer) Authorize(ctx context.Context, userID, teamID string, action services.Action) error {
	roles, err := a.policy.AllowedRoles(action)
	if err != nil {
		return fmt.Errorf("authorize %s: %w", action, err)
	}

	ok, err := a.teamRepo.HasMemberWithRole(ctx, teamID, userID, roles)
	if err != nil {
		return fmt.Errorf("authorize %s: %w", action, err)
	}
	if !ok {
		return &domain.ForbiddenError{Message: "Forbidden"}
	}
	return nil
}
