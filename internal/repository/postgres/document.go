package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"teamdocs/internal/domain"
	"teamdocs/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDocumentRepository implements repositories.DocumentRepository
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// MoveToFolder updates folder_id of the team's documents in ids in one statement.
// Ids belonging to other teams are not matched. Rows already in the target
// folder still count as matched, which keeps repeated moves idempotent.
func (r *PostgresDocumentRepository) MoveToFolder(ctx context.Context, teamID string, ids []string, folderID *string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1, updated_at = NOW()
		WHERE team_id = $2 AND id = ANY($3)
	`, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, folderID, teamID, ids)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return 0, &domain.ValidationError{Message: "folderId does not reference an existing folder"}
		}
		return 0, fmt.Errorf("move documents: %w", err)
	}

	return tag.RowsAffected(), nil
}
