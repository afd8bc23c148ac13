package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates all content tables if they don't exist. Meant for
// cmd/seed and tests; production migrations can run the same statements.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INT PRIMARY KEY CHECK (id = 1),
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				total_area TEXT NOT NULL DEFAULT '',
				investment TEXT NOT NULL DEFAULT '',
				logo_url TEXT NOT NULL DEFAULT '',
				nav_title TEXT NOT NULL DEFAULT '',
				nav_subtitle TEXT NOT NULL DEFAULT '',
				org_chart_url TEXT NOT NULL DEFAULT '',
				team_photo_url TEXT NOT NULL DEFAULT '',
				bim_model_url TEXT NOT NULL DEFAULT '',
				bim_overview TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.ProjectInfo),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INT PRIMARY KEY CHECK (id = 1),
				provider TEXT NOT NULL,
				provider_name TEXT NOT NULL DEFAULT '',
				api_key TEXT NOT NULL DEFAULT '',
				base_url TEXT NOT NULL DEFAULT '',
				model TEXT NOT NULL DEFAULT '',
				system_prompt TEXT NOT NULL DEFAULT '',
				knowledge_base TEXT NOT NULL DEFAULT '',
				documents JSONB NOT NULL DEFAULT '[]',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.AIConfig),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				summary TEXT NOT NULL DEFAULT '',
				full_description TEXT NOT NULL DEFAULT '',
				thumbnail TEXT NOT NULL DEFAULT '',
				images JSONB NOT NULL DEFAULT '[]',
				files JSONB NOT NULL DEFAULT '[]',
				video_url TEXT NOT NULL DEFAULT '',
				technical_specs JSONB NOT NULL DEFAULT '{}',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Highlights),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				type TEXT NOT NULL,
				date TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				image_url TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Achievements),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT '',
				contact TEXT NOT NULL DEFAULT '',
				avatar TEXT NOT NULL DEFAULT '',
				parent_id TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.TeamMembers),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				icon_name TEXT NOT NULL DEFAULT '',
				image TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.LocationSlides),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				image TEXT NOT NULL DEFAULT '',
				tag TEXT NOT NULL DEFAULT '',
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.SiteSlides),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				video_url TEXT NOT NULL DEFAULT '',
				cover_url TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.HeroVideos),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				category TEXT NOT NULL,
				name TEXT NOT NULL,
				logo TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.ParticipatingUnits),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DropTables removes all content tables. Destructive; cmd/seed gates it
// behind an explicit flag and refuses to run in production.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range tables.All() {
		stmt := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}
