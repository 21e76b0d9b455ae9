package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"teamdocs/internal/domain"
	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// INTEGRATION TESTS - require TEST_DATABASE_URL
// ============================================================================

type testDB struct {
	pool    *pgxpool.Pool
	config  *RepositoryConfig
	teams   repositories.TeamRepository
	docs    repositories.DocumentRepository
	folders repositories.FolderRepository
	tx      repositories.TransactionManager
}

func setupTestDB(t *testing.T) *testDB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := CreateConnectionPool(ctx, url)
	require.NoError(t, err)

	prefix := "it_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + "_"
	tables := NewTableNames(prefix)
	require.NoError(t, EnsureSchema(ctx, pool, tables))

	t.Cleanup(func() {
		_ = DropSchema(context.Background(), pool, tables)
		pool.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	config := &RepositoryConfig{Pool: pool, Tables: tables, Logger: logger}

	return &testDB{
		pool:    pool,
		config:  config,
		teams:   NewTeamRepository(config),
		docs:    NewDocumentRepository(config),
		folders: NewFolderRepository(config),
		tx:      NewTransactionManager(pool, logger),
	}
}

// folderOf reads back a document's folder_id; found is false when the row is gone
func (db *testDB) folderOf(t *testing.T, docID string) (folderID *string, found bool) {
	t.Helper()
	err := db.pool.QueryRow(context.Background(),
		`SELECT folder_id FROM `+db.config.Tables.Documents+` WHERE id = $1`, docID).Scan(&folderID)
	if IsPgNoRowsError(err) {
		return nil, false
	}
	require.NoError(t, err)
	return folderID, true
}

func (db *testDB) exec(t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := db.pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

// seed creates teams T and T2, ADMIN u-admin, MANAGER u-manager and MEMBER
// u-member on T, folders F0/F1 on T and F2 on T2, documents D1/D2 on T in
// F0 and D3 on T2.
func (db *testDB) seed(t *testing.T) {
	t.Helper()
	tb := db.config.Tables

	db.exec(t, `INSERT INTO `+tb.Teams+` (id, name) VALUES ('T', 'Team'), ('T2', 'Other')`)
	db.exec(t, `INSERT INTO `+tb.TeamMemberships+` (team_id, user_id, role) VALUES
		('T', 'u-admin', 'ADMIN'), ('T', 'u-manager', 'MANAGER'), ('T', 'u-member', 'MEMBER')`)
	db.exec(t, `INSERT INTO `+tb.Folders+` (id, team_id, name) VALUES
		('F0', 'T', 'Inbox'), ('F1', 'T', 'Archive'), ('F2', 'T2', 'Elsewhere')`)
	db.exec(t, `INSERT INTO `+tb.Documents+` (id, team_id, folder_id, name) VALUES
		('D1', 'T', 'F0', 'one'), ('D2', 'T', 'F0', 'two'), ('D3', 'T2', NULL, 'three')`)
}

func TestTeamRepository_HasMemberWithRole(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ctx := context.Background()
	privileged := []models.Role{models.RoleAdmin, models.RoleManager}

	tests := []struct {
		name   string
		teamID string
		userID string
		want   bool
	}{
		{"admin", "T", "u-admin", true},
		{"manager", "T", "u-manager", true},
		{"member", "T", "u-member", false},
		{"stranger", "T", "u-nobody", false},
		{"other team", "T2", "u-admin", false},
		{"missing team", "nope", "u-admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.teams.HasMemberWithRole(ctx, tt.teamID, tt.userID, privileged)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentRepository_MoveToFolder(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ctx := context.Background()
	f1 := "F1"

	count, err := db.docs.MoveToFolder(ctx, "T", []string{"D1", "D2", "D3", "missing"}, &f1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	for _, id := range []string{"D1", "D2"} {
		folderID, found := db.folderOf(t, id)
		require.True(t, found)
		require.NotNil(t, folderID)
		assert.Equal(t, "F1", *folderID)
	}

	// Cross-team document untouched
	d3Folder, found := db.folderOf(t, "D3")
	require.True(t, found)
	assert.Nil(t, d3Folder)

	// Repeating the move matches the same rows
	again, err := db.docs.MoveToFolder(ctx, "T", []string{"D1", "D2"}, &f1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again)
}

func TestDocumentRepository_MoveToFolder_NoFolder(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ctx := context.Background()

	count, err := db.docs.MoveToFolder(ctx, "T", []string{"D1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	folderID, found := db.folderOf(t, "D1")
	require.True(t, found)
	assert.Nil(t, folderID)
}

func TestDocumentRepository_MoveToFolder_NoMatches(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	f1 := "F1"

	count, err := db.docs.MoveToFolder(context.Background(), "T", []string{"D3", "missing"}, &f1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDocumentRepository_MoveToFolder_UnknownFolder(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ghost := "ghost"

	_, err := db.docs.MoveToFolder(context.Background(), "T", []string{"D1"}, &ghost)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestFolderRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ctx := context.Background()

	folder, err := db.folders.GetByID(ctx, "F1", "T")
	require.NoError(t, err)
	assert.Equal(t, "Archive", folder.Name)

	_, err = db.folders.GetByID(ctx, "F2", "T")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ctx := context.Background()
	f1 := "F1"
	boom := errors.New("boom")

	err := db.tx.ExecTx(ctx, func(txCtx context.Context) error {
		count, err := db.docs.MoveToFolder(txCtx, "T", []string{"D1"}, &f1)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	folderID, found := db.folderOf(t, "D1")
	require.True(t, found)
	require.NotNil(t, folderID)
	assert.Equal(t, "F0", *folderID)
}

func TestClearData(t *testing.T) {
	db := setupTestDB(t)
	db.seed(t)
	ctx := context.Background()

	require.NoError(t, ClearData(ctx, db.pool, db.config.Tables))

	_, found := db.folderOf(t, "D1")
	assert.False(t, found)
}
