// Seeds the Postgres backend with the showcase dataset. The SQLite backend
// needs no seeding; the server falls back to the built-in dataset when its
// store is empty.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"bimsite/internal/config"
	"bimsite/internal/repository/postgres"
	"bimsite/internal/seed"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed content")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL must be set to seed the Postgres backend")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.CreateSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	repo := postgres.NewRepository(&postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	})

	log.Println("📝 Seeding showcase content...")

	snap := seed.Snapshot()

	if err := repo.SaveProjectInfo(ctx, *snap.ProjectInfo); err != nil {
		log.Fatalf("Failed to seed project info: %v", err)
	}
	if err := repo.SaveAIConfig(ctx, *snap.AIConfig); err != nil {
		log.Fatalf("Failed to seed ai config: %v", err)
	}
	for _, item := range snap.Highlights {
		if err := repo.SaveHighlight(ctx, item); err != nil {
			log.Fatalf("Failed to seed highlight %s: %v", item.ID, err)
		}
	}
	for _, item := range snap.Achievements {
		if err := repo.SaveAchievement(ctx, item); err != nil {
			log.Fatalf("Failed to seed achievement %s: %v", item.ID, err)
		}
	}
	for _, item := range snap.TeamMembers {
		if err := repo.SaveTeamMember(ctx, item); err != nil {
			log.Fatalf("Failed to seed team member %s: %v", item.ID, err)
		}
	}
	for _, item := range snap.LocationSlides {
		if err := repo.SaveLocationSlide(ctx, item); err != nil {
			log.Fatalf("Failed to seed location slide %s: %v", item.ID, err)
		}
	}
	for _, item := range snap.SiteSlides {
		if err := repo.SaveSiteSlide(ctx, item); err != nil {
			log.Fatalf("Failed to seed site slide %s: %v", item.ID, err)
		}
	}
	for _, item := range snap.HeroVideos {
		if err := repo.SaveHeroVideo(ctx, item); err != nil {
			log.Fatalf("Failed to seed hero video %s: %v", item.ID, err)
		}
	}
	for _, item := range snap.ParticipatingUnits {
		if err := repo.SaveParticipatingUnit(ctx, item); err != nil {
			log.Fatalf("Failed to seed participating unit %s: %v", item.ID, err)
		}
	}

	log.Println("✅ Seeding complete")
}
