package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"teamdocs/internal/auth"
	"teamdocs/internal/config"
	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"
	"teamdocs/internal/repository/postgres"

	"github.com/joho/godotenv"
)

const (
	seedTeamID      = "team-demo"
	seedOtherTeamID = "team-other"
)

type seedMember struct {
	userID string
	role   models.Role
}

type seedFolder struct {
	id, teamID, name string
}

type seedDocument struct {
	id, teamID, name string
	folderID         *string
}

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Clear all teams, folders and documents (keep schema)")
	adminEmail := flag.String("admin-email", envOr("SEED_ADMIN_EMAIL", "admin@example.com"), "Email of the seeded team admin")
	adminPassword := flag.String("admin-password", envOr("SEED_ADMIN_PASSWORD", "password123"), "Password used when the admin user is created")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger := config.NewLogger(cfg.Environment, os.Stdout)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	logger.Info("seed starting", "environment", cfg.Environment, "table_prefix", cfg.TablePrefix)

	if *dropTables {
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		logger.Info("tables dropped")
	}

	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	logger.Info("schema ready")

	if *schemaOnly {
		return
	}

	if *clearData {
		if err := postgres.ClearData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		logger.Info("data cleared")
		return
	}

	adminID, err := resolveAdminID(ctx, cfg, *adminEmail, *adminPassword)
	if err != nil {
		log.Fatalf("Failed to resolve admin user: %v", err)
	}
	logger.Info("admin user resolved", "user_id", adminID, "email", *adminEmail)

	members := []seedMember{
		{userID: adminID, role: models.RoleAdmin},
		{userID: envOr("SEED_MANAGER_ID", "00000000-0000-0000-0000-000000000002"), role: models.RoleManager},
		{userID: envOr("SEED_MEMBER_ID", "00000000-0000-0000-0000-000000000003"), role: models.RoleMember},
	}

	txManager := postgres.NewTransactionManager(pool, logger)
	err = txManager.ExecTx(ctx, func(ctx context.Context) error {
		db := postgres.GetExecutor(ctx, pool)
		if err := seedTeams(ctx, db, tables, members); err != nil {
			return err
		}
		return seedContent(ctx, db, tables)
	})
	if err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	logger.Info("seeding complete", "team_id", seedTeamID)
}

// resolveAdminID creates or finds the admin through the Supabase admin API
// when a service key is configured, otherwise falls back to TEST_USER_ID.
func resolveAdminID(ctx context.Context, cfg *config.Config, email, password string) (string, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return envOr("TEST_USER_ID", "00000000-0000-0000-0000-000000000001"), nil
	}
	return auth.NewAdminClient(cfg.SupabaseURL, cfg.SupabaseKey).EnsureUser(ctx, email, password)
}

func seedTeams(ctx context.Context, db repositories.DBTX, tables *postgres.TableNames, members []seedMember) error {
	for _, t := range []struct{ id, name string }{
		{seedTeamID, "Demo Team"},
		{seedOtherTeamID, "Other Team"},
	} {
		if _, err := db.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, tables.Teams),
			t.id, t.name); err != nil {
			return fmt.Errorf("insert team %s: %w", t.id, err)
		}
	}

	for _, m := range members {
		if _, err := db.Exec(ctx,
			fmt.Sprintf(`
				INSERT INTO %s (team_id, user_id, role) VALUES ($1, $2, $3)
				ON CONFLICT (team_id, user_id) DO UPDATE SET role = EXCLUDED.role`, tables.TeamMemberships),
			seedTeamID, m.userID, m.role.String()); err != nil {
			return fmt.Errorf("insert membership %s: %w", m.userID, err)
		}
	}
	return nil
}

func seedContent(ctx context.Context, db repositories.DBTX, tables *postgres.TableNames) error {
	folders := []seedFolder{
		{id: "folder-inbox", teamID: seedTeamID, name: "Inbox"},
		{id: "folder-archive", teamID: seedTeamID, name: "Archive"},
		{id: "folder-other", teamID: seedOtherTeamID, name: "Elsewhere"},
	}
	inbox := "folder-inbox"
	documents := []seedDocument{
		{id: "doc-roadmap", teamID: seedTeamID, name: "Roadmap", folderID: &inbox},
		{id: "doc-notes", teamID: seedTeamID, name: "Meeting notes", folderID: &inbox},
		{id: "doc-loose", teamID: seedTeamID, name: "Loose draft"},
		{id: "doc-foreign", teamID: seedOtherTeamID, name: "Other team plan"},
	}

	for _, f := range folders {
		if _, err := db.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (id, team_id, name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`, tables.Folders),
			f.id, f.teamID, f.name); err != nil {
			return fmt.Errorf("insert folder %s: %w", f.id, err)
		}
	}

	for _, d := range documents {
		if _, err := db.Exec(ctx,
			fmt.Sprintf(`
				INSERT INTO %s (id, team_id, folder_id, name) VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO UPDATE SET folder_id = EXCLUDED.folder_id, updated_at = NOW()`, tables.Documents),
			d.id, d.teamID, d.folderID, d.name); err != nil {
			return fmt.Errorf("insert document %s: %w", d.id, err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
