// Package postgres is the remote persistence backend: one table per entity,
// snake_case columns, single-row tables for the singletons. Each entity's
// field-name mapping lives in exactly one entitySpec shared by its read and
// write paths.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bimsite/internal/domain/models"
	"bimsite/internal/domain/repositories"
)

// Repository implements repositories.ContentRepository against Postgres.
type Repository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger

	highlights   entitySpec[models.Highlight]
	achievements entitySpec[models.Achievement]
	teamMembers  entitySpec[models.TeamMember]
	locations    entitySpec[models.LocationSlide]
	sites        entitySpec[models.SiteSlide]
	videos       entitySpec[models.HeroVideo]
	units        entitySpec[models.ParticipatingUnit]
}

// RepositoryConfig holds the shared repository dependencies.
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// NewRepository creates the content repository with one column spec per
// entity.
func NewRepository(config *RepositoryConfig) repositories.ContentRepository {
	t := config.Tables

	return &Repository{
		pool:   config.Pool,
		tables: t,
		logger: config.Logger,

		highlights: entitySpec[models.Highlight]{
			table:   t.Highlights,
			columns: []string{"id", "title", "summary", "full_description", "thumbnail", "images", "files", "video_url", "technical_specs"},
			values: func(h models.Highlight) ([]any, error) {
				images, err := json.Marshal(orEmpty(h.Images))
				if err != nil {
					return nil, err
				}
				files, err := json.Marshal(orEmpty(h.Files))
				if err != nil {
					return nil, err
				}
				specs, err := json.Marshal(h.TechnicalSpecs)
				if err != nil {
					return nil, err
				}
				return []any{h.ID, h.Title, h.Summary, h.FullDescription, h.Thumbnail, images, files, h.VideoURL, specs}, nil
			},
			scan: func(rows pgx.Rows) (models.Highlight, error) {
				var h models.Highlight
				var images, files, specs []byte
				err := rows.Scan(&h.ID, &h.Title, &h.Summary, &h.FullDescription, &h.Thumbnail, &images, &files, &h.VideoURL, &specs)
				if err != nil {
					return h, err
				}
				if err := json.Unmarshal(images, &h.Images); err != nil {
					return h, err
				}
				if err := json.Unmarshal(files, &h.Files); err != nil {
					return h, err
				}
				if err := json.Unmarshal(specs, &h.TechnicalSpecs); err != nil {
					return h, err
				}
				return h, nil
			},
		},

		achievements: entitySpec[models.Achievement]{
			table:   t.Achievements,
			columns: []string{"id", "title", "type", "date", "description", "image_url"},
			values: func(a models.Achievement) ([]any, error) {
				return []any{a.ID, a.Title, string(a.Type), a.Date, a.Description, a.ImageURL}, nil
			},
			scan: func(rows pgx.Rows) (models.Achievement, error) {
				var a models.Achievement
				err := rows.Scan(&a.ID, &a.Title, &a.Type, &a.Date, &a.Description, &a.ImageURL)
				return a, err
			},
		},

		teamMembers: entitySpec[models.TeamMember]{
			table:   t.TeamMembers,
			columns: []string{"id", "name", "role", "contact", "avatar", "parent_id"},
			values: func(m models.TeamMember) ([]any, error) {
				return []any{m.ID, m.Name, m.Role, m.Contact, m.Avatar, m.ParentID}, nil
			},
			scan: func(rows pgx.Rows) (models.TeamMember, error) {
				var m models.TeamMember
				err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Contact, &m.Avatar, &m.ParentID)
				return m, err
			},
		},

		locations: entitySpec[models.LocationSlide]{
			table:   t.LocationSlides,
			columns: []string{"id", "title", "description", "icon_name", "image"},
			values: func(s models.LocationSlide) ([]any, error) {
				return []any{string(s.ID), s.Title, s.Description, s.IconName, s.Image}, nil
			},
			scan: func(rows pgx.Rows) (models.LocationSlide, error) {
				var s models.LocationSlide
				var id string
				err := rows.Scan(&id, &s.Title, &s.Description, &s.IconName, &s.Image)
				s.ID = models.FlexID(id)
				return s, err
			},
		},

		sites: entitySpec[models.SiteSlide]{
			table: t.SiteSlides,
			// The JSON field is "desc"; the column keeps the unabbreviated
			// name the original schema used.
			columns: []string{"id", "image", "tag", "title", "description"},
			values: func(s models.SiteSlide) ([]any, error) {
				return []any{string(s.ID), s.Image, s.Tag, s.Title, s.Desc}, nil
			},
			scan: func(rows pgx.Rows) (models.SiteSlide, error) {
				var s models.SiteSlide
				var id string
				err := rows.Scan(&id, &s.Image, &s.Tag, &s.Title, &s.Desc)
				s.ID = models.FlexID(id)
				return s, err
			},
		},

		videos: entitySpec[models.HeroVideo]{
			table:   t.HeroVideos,
			columns: []string{"id", "title", "video_url", "cover_url"},
			values: func(v models.HeroVideo) ([]any, error) {
				return []any{v.ID, v.Title, v.VideoURL, v.CoverURL}, nil
			},
			scan: func(rows pgx.Rows) (models.HeroVideo, error) {
				var v models.HeroVideo
				err := rows.Scan(&v.ID, &v.Title, &v.VideoURL, &v.CoverURL)
				return v, err
			},
		},

		units: entitySpec[models.ParticipatingUnit]{
			table:   t.ParticipatingUnits,
			columns: []string{"id", "category", "name", "logo"},
			values: func(u models.ParticipatingUnit) ([]any, error) {
				return []any{u.ID, string(u.Category), u.Name, u.Logo}, nil
			},
			scan: func(rows pgx.Rows) (models.ParticipatingUnit, error) {
				var u models.ParticipatingUnit
				err := rows.Scan(&u.ID, &u.Category, &u.Name, &u.Logo)
				return u, err
			},
		},
	}
}

func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// LoadSnapshot reads all entity tables. Lists come back non-nil (explicit
// seeding via cmd/seed owns first-run content); singletons are nil until
// their single row exists so hydration can fall back to defaults.
func (r *Repository) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}

	info, err := r.loadProjectInfo(ctx)
	if err != nil {
		return nil, err
	}
	snap.ProjectInfo = info

	ai, err := r.loadAIConfig(ctx)
	if err != nil {
		return nil, err
	}
	snap.AIConfig = ai

	if snap.Highlights, err = r.highlights.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.Achievements, err = r.achievements.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.TeamMembers, err = r.teamMembers.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.LocationSlides, err = r.locations.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.SiteSlides, err = r.sites.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.HeroVideos, err = r.videos.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.ParticipatingUnits, err = r.units.selectAll(ctx, r.pool); err != nil {
		return nil, err
	}

	return snap, nil
}

// --- Singletons (single-row tables, fixed id 1) ---

func (r *Repository) loadProjectInfo(ctx context.Context) (*models.ProjectInfo, error) {
	query := fmt.Sprintf(`
		SELECT name, description, location, total_area, investment,
		       logo_url, nav_title, nav_subtitle, org_chart_url,
		       team_photo_url, bim_model_url, bim_overview
		FROM %s WHERE id = 1`, r.tables.ProjectInfo)

	var info models.ProjectInfo
	err := r.pool.QueryRow(ctx, query).Scan(
		&info.Name, &info.Description, &info.Location, &info.TotalArea,
		&info.Investment, &info.LogoURL, &info.NavTitle, &info.NavSubtitle,
		&info.OrgChartURL, &info.TeamPhotoURL, &info.BIMModelURL, &info.BIMOverview,
	)
	if IsPgNoRowsError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load project info: %w", err)
	}
	return &info, nil
}

func (r *Repository) SaveProjectInfo(ctx context.Context, info models.ProjectInfo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, location, total_area, investment,
		                logo_url, nav_title, nav_subtitle, org_chart_url,
		                team_photo_url, bim_model_url, bim_overview)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			location = EXCLUDED.location, total_area = EXCLUDED.total_area,
			investment = EXCLUDED.investment, logo_url = EXCLUDED.logo_url,
			nav_title = EXCLUDED.nav_title, nav_subtitle = EXCLUDED.nav_subtitle,
			org_chart_url = EXCLUDED.org_chart_url, team_photo_url = EXCLUDED.team_photo_url,
			bim_model_url = EXCLUDED.bim_model_url, bim_overview = EXCLUDED.bim_overview`,
		r.tables.ProjectInfo)

	_, err := r.pool.Exec(ctx, query,
		info.Name, info.Description, info.Location, info.TotalArea,
		info.Investment, info.LogoURL, info.NavTitle, info.NavSubtitle,
		info.OrgChartURL, info.TeamPhotoURL, info.BIMModelURL, info.BIMOverview,
	)
	if err != nil {
		return fmt.Errorf("save project info: %w", err)
	}
	return nil
}

func (r *Repository) loadAIConfig(ctx context.Context) (*models.AIConfig, error) {
	query := fmt.Sprintf(`
		SELECT provider, provider_name, api_key, base_url, model,
		       system_prompt, knowledge_base, documents
		FROM %s WHERE id = 1`, r.tables.AIConfig)

	var cfg models.AIConfig
	var documents []byte
	err := r.pool.QueryRow(ctx, query).Scan(
		&cfg.Provider, &cfg.ProviderName, &cfg.APIKey, &cfg.BaseURL,
		&cfg.Model, &cfg.SystemPrompt, &cfg.KnowledgeBase, &documents,
	)
	if IsPgNoRowsError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ai config: %w", err)
	}
	if err := json.Unmarshal(documents, &cfg.Documents); err != nil {
		return nil, fmt.Errorf("decode ai config documents: %w", err)
	}
	return &cfg, nil
}

func (r *Repository) SaveAIConfig(ctx context.Context, cfg models.AIConfig) error {
	documents, err := json.Marshal(orEmpty(cfg.Documents))
	if err != nil {
		return fmt.Errorf("encode ai config documents: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, provider, provider_name, api_key, base_url, model,
		                system_prompt, knowledge_base, documents)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			provider = EXCLUDED.provider, provider_name = EXCLUDED.provider_name,
			api_key = EXCLUDED.api_key, base_url = EXCLUDED.base_url,
			model = EXCLUDED.model, system_prompt = EXCLUDED.system_prompt,
			knowledge_base = EXCLUDED.knowledge_base, documents = EXCLUDED.documents`,
		r.tables.AIConfig)

	_, err = r.pool.Exec(ctx, query,
		cfg.Provider, cfg.ProviderName, cfg.APIKey, cfg.BaseURL,
		cfg.Model, cfg.SystemPrompt, cfg.KnowledgeBase, documents,
	)
	if err != nil {
		return fmt.Errorf("save ai config: %w", err)
	}
	return nil
}

// --- Lists ---

func (r *Repository) SaveHighlight(ctx context.Context, item models.Highlight) error {
	return r.highlights.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteHighlight(ctx context.Context, id string) error {
	return r.highlights.delete(ctx, r.pool, id)
}

func (r *Repository) SaveAchievement(ctx context.Context, item models.Achievement) error {
	return r.achievements.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteAchievement(ctx context.Context, id string) error {
	return r.achievements.delete(ctx, r.pool, id)
}

func (r *Repository) SaveTeamMember(ctx context.Context, item models.TeamMember) error {
	return r.teamMembers.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteTeamMember(ctx context.Context, id string) error {
	return r.teamMembers.delete(ctx, r.pool, id)
}

func (r *Repository) SaveLocationSlide(ctx context.Context, item models.LocationSlide) error {
	return r.locations.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteLocationSlide(ctx context.Context, id string) error {
	return r.locations.delete(ctx, r.pool, id)
}

func (r *Repository) SaveSiteSlide(ctx context.Context, item models.SiteSlide) error {
	return r.sites.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteSiteSlide(ctx context.Context, id string) error {
	return r.sites.delete(ctx, r.pool, id)
}

func (r *Repository) SaveHeroVideo(ctx context.Context, item models.HeroVideo) error {
	return r.videos.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteHeroVideo(ctx context.Context, id string) error {
	return r.videos.delete(ctx, r.pool, id)
}

func (r *Repository) SaveParticipatingUnit(ctx context.Context, item models.ParticipatingUnit) error {
	return r.units.upsert(ctx, r.pool, item)
}

func (r *Repository) DeleteParticipatingUnit(ctx context.Context, id string) error {
	return r.units.delete(ctx, r.pool, id)
}
