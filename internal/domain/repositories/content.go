package repositories

import (
	"context"

	"bimsite/internal/domain/models"
)

// ContentRepository persists the content store. Two implementations exist:
// an embedded SQLite store keeping one JSON document per entity name, and a
// Postgres store with one table per entity. Save* is an upsert keyed by id;
// Delete* is a no-op when the id is absent.
type ContentRepository interface {
	// LoadSnapshot hydrates the full content state. Entities the backend has
	// never stored come back nil so the caller can seed them.
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)

	SaveProjectInfo(ctx context.Context, info models.ProjectInfo) error
	SaveAIConfig(ctx context.Context, cfg models.AIConfig) error

	SaveHighlight(ctx context.Context, item models.Highlight) error
	DeleteHighlight(ctx context.Context, id string) error

	SaveAchievement(ctx context.Context, item models.Achievement) error
	DeleteAchievement(ctx context.Context, id string) error

	SaveTeamMember(ctx context.Context, item models.TeamMember) error
	DeleteTeamMember(ctx context.Context, id string) error

	SaveLocationSlide(ctx context.Context, item models.LocationSlide) error
	DeleteLocationSlide(ctx context.Context, id string) error

	SaveSiteSlide(ctx context.Context, item models.SiteSlide) error
	DeleteSiteSlide(ctx context.Context, id string) error

	SaveHeroVideo(ctx context.Context, item models.HeroVideo) error
	DeleteHeroVideo(ctx context.Context, id string) error

	SaveParticipatingUnit(ctx context.Context, item models.ParticipatingUnit) error
	DeleteParticipatingUnit(ctx context.Context, id string) error

	Close() error
}
