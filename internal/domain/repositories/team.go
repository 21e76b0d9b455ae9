package repositories

import (
	"context"

	"teamdocs/internal/domain/models"
)

// TeamRepository reads teams and their memberships
type TeamRepository interface {
	// HasMemberWithRole reports whether userID belongs to teamID with one of
	// roles. A missing team reports false, not an error. Inside a
	// transaction the matching membership row stays share-locked until commit.
	HasMemberWithRole(ctx context.Context, teamID, userID string, roles []models.Role) (bool, error)
}
