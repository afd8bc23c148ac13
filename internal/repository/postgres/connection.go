package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TableNames holds environment-prefixed table names so dev/test/prod can
// share one database.
type TableNames struct {
	ProjectInfo        string
	AIConfig           string
	Highlights         string
	Achievements       string
	TeamMembers        string
	LocationSlides     string
	SiteSlides         string
	HeroVideos         string
	ParticipatingUnits string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		ProjectInfo:        prefix + "project_info",
		AIConfig:           prefix + "ai_config",
		Highlights:         prefix + "highlights",
		Achievements:       prefix + "achievements",
		TeamMembers:        prefix + "team_members",
		LocationSlides:     prefix + "location_slides",
		SiteSlides:         prefix + "site_slides",
		HeroVideos:         prefix + "hero_videos",
		ParticipatingUnits: prefix + "participating_units",
	}
}

// All returns every table name, in dependency-safe drop order.
func (t *TableNames) All() []string {
	return []string{
		t.ProjectInfo,
		t.AIConfig,
		t.Highlights,
		t.Achievements,
		t.TeamMembers,
		t.LocationSlides,
		t.SiteSlides,
		t.HeroVideos,
		t.ParticipatingUnits,
	}
}

// CreateConnectionPool creates a pgx connection pool.
//
// When the URL points at a transaction pooler (port 6543 on Supabase),
// prepared statements break with "prepared statement already exists";
// QueryExecModeCacheDescribe caches statement descriptions instead, which the
// pooler tolerates while still using the extended protocol needed for jsonb
// parameters. A default_query_exec_mode set on the URL takes precedence.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
