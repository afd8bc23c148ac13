// Package sqlite is the default persistence backend: an embedded database
// holding one JSON document per entity name, the same layout the site used in
// browser local storage. List mutations are read-modify-write over the stored
// document, so the backend never needs per-entity schema.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"bimsite/internal/domain/models"
	"bimsite/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS content_store (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Store implements repositories.ContentRepository over a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates or opens the content database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer; the content store serializes mutations anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// loadValue unmarshals the stored document for key into dest. Returns
// sql.ErrNoRows when the key has never been written.
func (s *Store) loadValue(ctx context.Context, key string, dest any) error {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM content_store WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveValue(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO content_store (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// loadList returns the stored list for key, or nil when the key is absent.
func loadList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var list []T
	err := s.loadValue(ctx, key, &list)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// upsertItem rewrites the whole stored list with the item inserted or
// replaced, preserving order.
func upsertItem[T store.Keyed](ctx context.Context, s *Store, key string, item T) error {
	list, err := loadList[T](ctx, s, key)
	if err != nil {
		return err
	}
	return s.saveValue(ctx, key, store.Upsert(list, item))
}

// removeItem rewrites the stored list without the given id. Removing from an
// absent or already-clean list still writes, keeping the call idempotent.
func removeItem[T store.Keyed](ctx context.Context, s *Store, key string, id string) error {
	list, err := loadList[T](ctx, s, key)
	if err != nil {
		return err
	}
	return s.saveValue(ctx, key, store.Remove(list, id))
}

// LoadSnapshot reads every entity document. Absent keys come back nil so the
// content store can fall back to seed data, matching first-visit behavior.
func (s *Store) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}

	var info models.ProjectInfo
	switch err := s.loadValue(ctx, store.EntityProjectInfo, &info); {
	case err == nil:
		snap.ProjectInfo = &info
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	var ai models.AIConfig
	switch err := s.loadValue(ctx, store.EntityAIConfig, &ai); {
	case err == nil:
		snap.AIConfig = &ai
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	var err error
	if snap.Highlights, err = loadList[models.Highlight](ctx, s, store.EntityHighlights); err != nil {
		return nil, err
	}
	if snap.Achievements, err = loadList[models.Achievement](ctx, s, store.EntityAchievements); err != nil {
		return nil, err
	}
	if snap.TeamMembers, err = loadList[models.TeamMember](ctx, s, store.EntityTeamMembers); err != nil {
		return nil, err
	}
	if snap.LocationSlides, err = loadList[models.LocationSlide](ctx, s, store.EntityLocationSlides); err != nil {
		return nil, err
	}
	if snap.SiteSlides, err = loadList[models.SiteSlide](ctx, s, store.EntitySiteSlides); err != nil {
		return nil, err
	}
	if snap.HeroVideos, err = loadList[models.HeroVideo](ctx, s, store.EntityHeroVideos); err != nil {
		return nil, err
	}
	if snap.ParticipatingUnits, err = loadList[models.ParticipatingUnit](ctx, s, store.EntityParticipatingUnits); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *Store) SaveProjectInfo(ctx context.Context, info models.ProjectInfo) error {
	return s.saveValue(ctx, store.EntityProjectInfo, info)
}

func (s *Store) SaveAIConfig(ctx context.Context, cfg models.AIConfig) error {
	return s.saveValue(ctx, store.EntityAIConfig, cfg)
}

func (s *Store) SaveHighlight(ctx context.Context, item models.Highlight) error {
	return upsertItem(ctx, s, store.EntityHighlights, item)
}

func (s *Store) DeleteHighlight(ctx context.Context, id string) error {
	return removeItem[models.Highlight](ctx, s, store.EntityHighlights, id)
}

func (s *Store) SaveAchievement(ctx context.Context, item models.Achievement) error {
	return upsertItem(ctx, s, store.EntityAchievements, item)
}

func (s *Store) DeleteAchievement(ctx context.Context, id string) error {
	return removeItem[models.Achievement](ctx, s, store.EntityAchievements, id)
}

func (s *Store) SaveTeamMember(ctx context.Context, item models.TeamMember) error {
	return upsertItem(ctx, s, store.EntityTeamMembers, item)
}

func (s *Store) DeleteTeamMember(ctx context.Context, id string) error {
	return removeItem[models.TeamMember](ctx, s, store.EntityTeamMembers, id)
}

func (s *Store) SaveLocationSlide(ctx context.Context, item models.LocationSlide) error {
	return upsertItem(ctx, s, store.EntityLocationSlides, item)
}

func (s *Store) DeleteLocationSlide(ctx context.Context, id string) error {
	return removeItem[models.LocationSlide](ctx, s, store.EntityLocationSlides, id)
}

func (s *Store) SaveSiteSlide(ctx context.Context, item models.SiteSlide) error {
	return upsertItem(ctx, s, store.EntitySiteSlides, item)
}

func (s *Store) DeleteSiteSlide(ctx context.Context, id string) error {
	return removeItem[models.SiteSlide](ctx, s, store.EntitySiteSlides, id)
}

func (s *Store) SaveHeroVideo(ctx context.Context, item models.HeroVideo) error {
	return upsertItem(ctx, s, store.EntityHeroVideos, item)
}

func (s *Store) DeleteHeroVideo(ctx context.Context, id string) error {
	return removeItem[models.HeroVideo](ctx, s, store.EntityHeroVideos, id)
}

func (s *Store) SaveParticipatingUnit(ctx context.Context, item models.ParticipatingUnit) error {
	return upsertItem(ctx, s, store.EntityParticipatingUnits, item)
}

func (s *Store) DeleteParticipatingUnit(ctx context.Context, id string) error {
	return removeItem[models.ParticipatingUnit](ctx, s, store.EntityParticipatingUnits, id)
}
