package postgres

import (
	"context"
	"fmt"

	"teamdocs/internal/domain/repositories"
)

// EnsureSchema creates the prefixed tables when missing. Used by cmd/seed
// and the repository tests; production schemas are managed outside this service.
func EnsureSchema(ctx context.Context, db repositories.DBTX, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Teams),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				team_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				user_id TEXT NOT NULL,
				role TEXT NOT NULL CHECK (role IN ('ADMIN', 'MANAGER', 'MEMBER')),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (team_id, user_id)
			)`, tables.TeamMemberships, tables.Teams),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				team_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				parent_id TEXT REFERENCES %s(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Folders, tables.Teams, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				team_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				folder_id TEXT REFERENCES %s(id) ON DELETE SET NULL,
				name TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Documents, tables.Teams, tables.Folders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_team_id_idx ON %s (team_id)`, tables.Documents, tables.Documents),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops the prefixed tables, children first
func DropSchema(ctx context.Context, db repositories.DBTX, tables *TableNames) error {
	for _, table := range []string{tables.Documents, tables.Folders, tables.TeamMemberships, tables.Teams} {
		if _, err := db.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

// ClearData deletes all rows of the prefixed tables, keeping the schema
func ClearData(ctx context.Context, db repositories.DBTX, tables *TableNames) error {
	if _, err := db.Exec(ctx, fmt.Sprintf(`TRUNCATE %s, %s, %s, %s`,
		tables.Documents, tables.Folders, tables.TeamMemberships, tables.Teams)); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}
