package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTeamRepository implements repositories.TeamRepository
type PostgresTeamRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(config *RepositoryConfig) repositories.TeamRepository {
	return &PostgresTeamRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// HasMemberWithRole checks membership of userID in teamID restricted to roles.
// The row is read FOR SHARE so that, inside a transaction, a concurrent role
// change waits until the caller commits.
func (r *PostgresTeamRepository) HasMemberWithRole(ctx context.Context, teamID, userID string, roles []models.Role) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}

	query := fmt.Sprintf(`
		SELECT m.role
		FROM %s m
		JOIN %s t ON t.id = m.team_id
		WHERE m.team_id = $1 AND m.user_id = $2 AND m.role = ANY($3)
		LIMIT 1
		FOR SHARE OF m
	`, r.tables.TeamMemberships, r.tables.Teams)

	roleNames := make([]string, len(roles))
	for i, role := range roles {
		roleNames[i] = role.String()
	}

	var role string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, teamID, userID, roleNames).Scan(&role)
	if err != nil {
		if IsPgNoRowsError(err) {
			return false, nil
		}
		return false, fmt.Errorf("check team membership: %w", err)
	}

	return true, nil
}
