// Package store holds the in-memory content state for the lifetime of the
// process. It is the single owner of every entity list and singleton record:
// views read from it, admin mutations go through it, and each mutation is
// persisted to the configured repository before the call returns, so a read
// issued after a successful write always observes the new value.
package store

import (
	"context"
	"log/slog"
	"sync"

	"bimsite/internal/domain/models"
	"bimsite/internal/domain/repositories"
	"bimsite/internal/seed"
)

// Entity names double as persistence keys (the local backend stores one JSON
// document per name) and as change-event topics.
const (
	EntityProjectInfo        = "projectInfo"
	EntityHighlights         = "highlights"
	EntityAchievements       = "achievements"
	EntityTeamMembers        = "teamMembers"
	EntityLocationSlides     = "locationSlides"
	EntitySiteSlides         = "siteSlides"
	EntityHeroVideos         = "heroVideos"
	EntityParticipatingUnits = "participatingUnits"
	EntityAIConfig           = "aiConfig"
)

// Content is the process-wide content state. All list slices are treated as
// immutable: mutations build a fresh slice, so a slice handed out by a getter
// is a stable snapshot even while writers proceed.
type Content struct {
	mu     sync.RWMutex
	repo   repositories.ContentRepository
	logger *slog.Logger

	projectInfo        models.ProjectInfo
	highlights         []models.Highlight
	achievements       []models.Achievement
	teamMembers        []models.TeamMember
	locationSlides     []models.LocationSlide
	siteSlides         []models.SiteSlide
	heroVideos         []models.HeroVideo
	participatingUnits []models.ParticipatingUnit
	aiConfig           models.AIConfig

	subMu   sync.Mutex
	subs    map[int]chan string
	nextSub int
}

// New creates an unhydrated store. Call Load before serving.
func New(repo repositories.ContentRepository, logger *slog.Logger) *Content {
	return &Content{
		repo:   repo,
		logger: logger,
		subs:   make(map[int]chan string),
	}
}

// Load hydrates the store from the repository. Entities the backend has never
// stored fall back to the built-in seed dataset, mirroring first-run behavior.
func (c *Content) Load(ctx context.Context) error {
	snap, err := c.repo.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.ProjectInfo != nil {
		c.projectInfo = *snap.ProjectInfo
	} else {
		c.projectInfo = seed.ProjectInfo()
	}
	if snap.AIConfig != nil {
		c.aiConfig = *snap.AIConfig
	} else {
		c.aiConfig = seed.AIConfig()
	}

	c.highlights = orSeed(snap.Highlights, seed.Highlights)
	c.achievements = orSeed(snap.Achievements, seed.Achievements)
	c.teamMembers = orSeed(snap.TeamMembers, seed.TeamMembers)
	c.locationSlides = orSeed(snap.LocationSlides, seed.LocationSlides)
	c.siteSlides = orSeed(snap.SiteSlides, seed.SiteSlides)
	c.heroVideos = orSeed(snap.HeroVideos, seed.HeroVideos)
	c.participatingUnits = orSeed(snap.ParticipatingUnits, seed.ParticipatingUnits)

	c.logger.Info("content store hydrated",
		"highlights", len(c.highlights),
		"achievements", len(c.achievements),
		"team_members", len(c.teamMembers),
		"hero_videos", len(c.heroVideos),
	)

	return nil
}

func orSeed[T any](loaded []T, fallback func() []T) []T {
	if loaded != nil {
		return loaded
	}
	return fallback()
}

// --- Reads ---

func (c *Content) ProjectInfo() models.ProjectInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projectInfo
}

func (c *Content) AIConfig() models.AIConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.aiConfig
}

func (c *Content) Highlights() []models.Highlight {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.highlights
}

func (c *Content) Achievements() []models.Achievement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.achievements
}

func (c *Content) TeamMembers() []models.TeamMember {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.teamMembers
}

func (c *Content) LocationSlides() []models.LocationSlide {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locationSlides
}

func (c *Content) SiteSlides() []models.SiteSlide {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.siteSlides
}

func (c *Content) HeroVideos() []models.HeroVideo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.heroVideos
}

func (c *Content) ParticipatingUnits() []models.ParticipatingUnit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.participatingUnits
}

// Snapshot returns the full state including the AI credential. Callers
// shaping public responses must not expose the AIConfig field.
func (c *Content) Snapshot() models.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info := c.projectInfo
	ai := c.aiConfig
	return models.Snapshot{
		ProjectInfo:        &info,
		Highlights:         c.highlights,
		Achievements:       c.achievements,
		TeamMembers:        c.teamMembers,
		LocationSlides:     c.locationSlides,
		SiteSlides:         c.siteSlides,
		HeroVideos:         c.heroVideos,
		ParticipatingUnits: c.participatingUnits,
		AIConfig:           &ai,
	}
}

// --- Mutations ---
//
// Each mutation applies in memory first and then persists while still holding
// the write lock, which serializes backend writes in mutation order. A
// persistence failure is returned to the caller but the in-memory change is
// kept: the operator's edit stays visible for the session even when only the
// durability guarantee degrades.

func (c *Content) SetProjectInfo(ctx context.Context, info models.ProjectInfo) error {
	c.mu.Lock()
	c.projectInfo = info
	err := c.repo.SaveProjectInfo(ctx, info)
	c.mu.Unlock()
	c.notify(EntityProjectInfo)
	return err
}

func (c *Content) SetAIConfig(ctx context.Context, cfg models.AIConfig) error {
	c.mu.Lock()
	c.aiConfig = cfg
	err := c.repo.SaveAIConfig(ctx, cfg)
	c.mu.Unlock()
	c.notify(EntityAIConfig)
	return err
}

func (c *Content) SaveHighlight(ctx context.Context, item models.Highlight) error {
	c.mu.Lock()
	c.highlights = Upsert(c.highlights, item)
	err := c.repo.SaveHighlight(ctx, item)
	c.mu.Unlock()
	c.notify(EntityHighlights)
	return err
}

func (c *Content) DeleteHighlight(ctx context.Context, id string) error {
	c.mu.Lock()
	c.highlights = Remove(c.highlights, id)
	err := c.repo.DeleteHighlight(ctx, id)
	c.mu.Unlock()
	c.notify(EntityHighlights)
	return err
}

func (c *Content) SaveAchievement(ctx context.Context, item models.Achievement) error {
	c.mu.Lock()
	c.achievements = Upsert(c.achievements, item)
	err := c.repo.SaveAchievement(ctx, item)
	c.mu.Unlock()
	c.notify(EntityAchievements)
	return err
}

func (c *Content) DeleteAchievement(ctx context.Context, id string) error {
	c.mu.Lock()
	c.achievements = Remove(c.achievements, id)
	err := c.repo.DeleteAchievement(ctx, id)
	c.mu.Unlock()
	c.notify(EntityAchievements)
	return err
}

func (c *Content) SaveTeamMember(ctx context.Context, item models.TeamMember) error {
	c.mu.Lock()
	c.teamMembers = Upsert(c.teamMembers, item)
	err := c.repo.SaveTeamMember(ctx, item)
	c.mu.Unlock()
	c.notify(EntityTeamMembers)
	return err
}

func (c *Content) DeleteTeamMember(ctx context.Context, id string) error {
	c.mu.Lock()
	c.teamMembers = Remove(c.teamMembers, id)
	err := c.repo.DeleteTeamMember(ctx, id)
	c.mu.Unlock()
	c.notify(EntityTeamMembers)
	return err
}

func (c *Content) SaveLocationSlide(ctx context.Context, item models.LocationSlide) error {
	c.mu.Lock()
	c.locationSlides = Upsert(c.locationSlides, item)
	err := c.repo.SaveLocationSlide(ctx, item)
	c.mu.Unlock()
	c.notify(EntityLocationSlides)
	return err
}

func (c *Content) DeleteLocationSlide(ctx context.Context, id string) error {
	c.mu.Lock()
	c.locationSlides = Remove(c.locationSlides, id)
	err := c.repo.DeleteLocationSlide(ctx, id)
	c.mu.Unlock()
	c.notify(EntityLocationSlides)
	return err
}

func (c *Content) SaveSiteSlide(ctx context.Context, item models.SiteSlide) error {
	c.mu.Lock()
	c.siteSlides = Upsert(c.siteSlides, item)
	err := c.repo.SaveSiteSlide(ctx, item)
	c.mu.Unlock()
	c.notify(EntitySiteSlides)
	return err
}

func (c *Content) DeleteSiteSlide(ctx context.Context, id string) error {
	c.mu.Lock()
	c.siteSlides = Remove(c.siteSlides, id)
	err := c.repo.DeleteSiteSlide(ctx, id)
	c.mu.Unlock()
	c.notify(EntitySiteSlides)
	return err
}

func (c *Content) SaveHeroVideo(ctx context.Context, item models.HeroVideo) error {
	c.mu.Lock()
	c.heroVideos = Upsert(c.heroVideos, item)
	err := c.repo.SaveHeroVideo(ctx, item)
	c.mu.Unlock()
	c.notify(EntityHeroVideos)
	return err
}

func (c *Content) DeleteHeroVideo(ctx context.Context, id string) error {
	c.mu.Lock()
	c.heroVideos = Remove(c.heroVideos, id)
	err := c.repo.DeleteHeroVideo(ctx, id)
	c.mu.Unlock()
	c.notify(EntityHeroVideos)
	return err
}

func (c *Content) SaveParticipatingUnit(ctx context.Context, item models.ParticipatingUnit) error {
	c.mu.Lock()
	c.participatingUnits = Upsert(c.participatingUnits, item)
	err := c.repo.SaveParticipatingUnit(ctx, item)
	c.mu.Unlock()
	c.notify(EntityParticipatingUnits)
	return err
}

func (c *Content) DeleteParticipatingUnit(ctx context.Context, id string) error {
	c.mu.Lock()
	c.participatingUnits = Remove(c.participatingUnits, id)
	err := c.repo.DeleteParticipatingUnit(ctx, id)
	c.mu.Unlock()
	c.notify(EntityParticipatingUnits)
	return err
}

// --- Change notification ---
//
// Views in a non-reactive runtime need an explicit signal that content
// changed. Subscribers get the entity name of every mutation; slow consumers
// drop events rather than block writers.

// Subscribe registers a change listener. The returned cancel func must be
// called when the consumer goes away.
func (c *Content) Subscribe() (<-chan string, func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan string, 16)
	c.subs[id] = ch

	cancel := func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (c *Content) notify(entity string) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- entity:
		default:
		}
	}
}
