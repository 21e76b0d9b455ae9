package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"teamdocs/internal/domain"
	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFolderRepository implements repositories.FolderRepository
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// GetByID retrieves a folder of teamID by id
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id, teamID string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, team_id, parent_id, name, created_at, updated_at
		FROM %s
		WHERE id = $1 AND team_id = $2
	`, r.tables.Folders)

	var folder models.Folder
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, teamID).Scan(
		&folder.ID,
		&folder.TeamID,
		&folder.ParentID,
		&folder.Name,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}
