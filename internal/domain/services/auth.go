package services

import "context"

// Action names a team-scoped operation that requires a role check
type Action string

const (
	ActionMoveDocuments Action = "documents.move"
)

// TeamAuthorizer checks whether a user may perform an action in a team.
//
// Returns nil when allowed and an error matching domain.ErrForbidden when
// not. A team that does not exist is reported the same way as a missing
// role so callers cannot probe for team ids.
type TeamAuthorizer interface {
	Authorize(ctx context.Context, userID, teamID string, action Action) error
}
