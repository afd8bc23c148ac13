// Package content provides the content management service: validation and
// id assignment on top of the in-memory store, plus the derived views
// (public payload, team tree) the handlers serve.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bimsite/internal/domain"
	"bimsite/internal/domain/models"
	"bimsite/internal/store"
)

// Service wraps the content store with input validation and business rules.
type Service struct {
	store  *store.Content
	logger *slog.Logger
}

// NewService creates a content service.
func NewService(st *store.Content, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// PublicContent is the full public payload, keyed the way the frontend
// stores it. The AI configuration is deliberately absent: it carries the
// API key and is only reachable through the admin routes.
type PublicContent struct {
	ProjectInfo        models.ProjectInfo         `json:"projectInfo"`
	Highlights         []models.Highlight         `json:"highlights"`
	Achievements       []models.Achievement       `json:"achievements"`
	TeamMembers        []models.TeamMember        `json:"teamMembers"`
	LocationSlides     []models.LocationSlide     `json:"locationSlides"`
	SiteSlides         []models.SiteSlide         `json:"siteSlides"`
	HeroVideos         []models.HeroVideo         `json:"heroVideos"`
	ParticipatingUnits []models.ParticipatingUnit `json:"participatingUnits"`
}

// PublicContent returns everything the public site renders.
func (s *Service) PublicContent() PublicContent {
	return PublicContent{
		ProjectInfo:        s.store.ProjectInfo(),
		Highlights:         s.store.Highlights(),
		Achievements:       s.store.Achievements(),
		TeamMembers:        s.store.TeamMembers(),
		LocationSlides:     s.store.LocationSlides(),
		SiteSlides:         s.store.SiteSlides(),
		HeroVideos:         s.store.HeroVideos(),
		ParticipatingUnits: s.store.ParticipatingUnits(),
	}
}

// --- Reads ---

func (s *Service) ProjectInfo() models.ProjectInfo { return s.store.ProjectInfo() }

func (s *Service) Highlights() []models.Highlight { return s.store.Highlights() }

// Highlight returns a single highlight by id.
func (s *Service) Highlight(id string) (models.Highlight, error) {
	for _, h := range s.store.Highlights() {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Highlight{}, &domain.NotFoundError{Message: fmt.Sprintf("highlight %s not found", id)}
}

func (s *Service) Achievements() []models.Achievement { return s.store.Achievements() }

func (s *Service) TeamMembers() []models.TeamMember { return s.store.TeamMembers() }

func (s *Service) LocationSlides() []models.LocationSlide { return s.store.LocationSlides() }

func (s *Service) SiteSlides() []models.SiteSlide { return s.store.SiteSlides() }

func (s *Service) HeroVideos() []models.HeroVideo { return s.store.HeroVideos() }

func (s *Service) ParticipatingUnits() []models.ParticipatingUnit {
	return s.store.ParticipatingUnits()
}

// --- Writes ---

// UpdateProjectInfo replaces the project information document.
func (s *Service) UpdateProjectInfo(ctx context.Context, info models.ProjectInfo) error {
	err := validation.ValidateStruct(&info,
		validation.Field(&info.Name, validation.Required),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SetProjectInfo(ctx, info); err != nil {
		return err
	}
	s.logger.Info("project info updated", "name", info.Name)
	return nil
}

// SaveHighlight inserts or replaces a highlight. A missing id means insert
// and gets a generated one.
func (s *Service) SaveHighlight(ctx context.Context, item models.Highlight) (models.Highlight, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
	)
	if err != nil {
		return models.Highlight{}, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SaveHighlight(ctx, item); err != nil {
		return models.Highlight{}, err
	}
	s.logger.Info("highlight saved", "id", item.ID, "title", item.Title)
	return item, nil
}

func (s *Service) DeleteHighlight(ctx context.Context, id string) error {
	return s.store.DeleteHighlight(ctx, id)
}

// SaveAchievement inserts or replaces an achievement.
func (s *Service) SaveAchievement(ctx context.Context, item models.Achievement) (models.Achievement, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
		validation.Field(&item.Type, validation.Required, validation.In(toAny(models.AchievementTypes)...)),
	)
	if err != nil {
		return models.Achievement{}, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SaveAchievement(ctx, item); err != nil {
		return models.Achievement{}, err
	}
	s.logger.Info("achievement saved", "id", item.ID, "type", item.Type)
	return item, nil
}

func (s *Service) DeleteAchievement(ctx context.Context, id string) error {
	return s.store.DeleteAchievement(ctx, id)
}

// SaveTeamMember inserts or replaces a team member.
func (s *Service) SaveTeamMember(ctx context.Context, item models.TeamMember) (models.TeamMember, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Name, validation.Required),
	)
	if err != nil {
		return models.TeamMember{}, &domain.ValidationError{Message: err.Error()}
	}
	if item.ParentID == item.ID {
		// Self-parenting would orphan the node in the org tree.
		item.ParentID = ""
	}

	if err := s.store.SaveTeamMember(ctx, item); err != nil {
		return models.TeamMember{}, err
	}
	s.logger.Info("team member saved", "id", item.ID, "name", item.Name)
	return item, nil
}

func (s *Service) DeleteTeamMember(ctx context.Context, id string) error {
	return s.store.DeleteTeamMember(ctx, id)
}

// SaveLocationSlide inserts or replaces a location slide.
func (s *Service) SaveLocationSlide(ctx context.Context, item models.LocationSlide) (models.LocationSlide, error) {
	if item.ID == "" {
		item.ID = models.FlexID(uuid.NewString())
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
	)
	if err != nil {
		return models.LocationSlide{}, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SaveLocationSlide(ctx, item); err != nil {
		return models.LocationSlide{}, err
	}
	return item, nil
}

func (s *Service) DeleteLocationSlide(ctx context.Context, id string) error {
	return s.store.DeleteLocationSlide(ctx, id)
}

// SaveSiteSlide inserts or replaces a construction-progress slide.
func (s *Service) SaveSiteSlide(ctx context.Context, item models.SiteSlide) (models.SiteSlide, error) {
	if item.ID == "" {
		item.ID = models.FlexID(uuid.NewString())
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
	)
	if err != nil {
		return models.SiteSlide{}, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SaveSiteSlide(ctx, item); err != nil {
		return models.SiteSlide{}, err
	}
	return item, nil
}

func (s *Service) DeleteSiteSlide(ctx context.Context, id string) error {
	return s.store.DeleteSiteSlide(ctx, id)
}

// SaveHeroVideo inserts or replaces a hero video.
func (s *Service) SaveHeroVideo(ctx context.Context, item models.HeroVideo) (models.HeroVideo, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
	)
	if err != nil {
		return models.HeroVideo{}, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SaveHeroVideo(ctx, item); err != nil {
		return models.HeroVideo{}, err
	}
	return item, nil
}

func (s *Service) DeleteHeroVideo(ctx context.Context, id string) error {
	return s.store.DeleteHeroVideo(ctx, id)
}

// SaveParticipatingUnit inserts or replaces a participating unit.
func (s *Service) SaveParticipatingUnit(ctx context.Context, item models.ParticipatingUnit) (models.ParticipatingUnit, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Name, validation.Required),
		validation.Field(&item.Category, validation.Required, validation.In(toAny(models.UnitCategories)...)),
	)
	if err != nil {
		return models.ParticipatingUnit{}, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.store.SaveParticipatingUnit(ctx, item); err != nil {
		return models.ParticipatingUnit{}, err
	}
	return item, nil
}

func (s *Service) DeleteParticipatingUnit(ctx context.Context, id string) error {
	return s.store.DeleteParticipatingUnit(ctx, id)
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// --- AI configuration ---

// AIConfigView returns the AI configuration with the API key redacted, plus
// whether a key is currently stored. The raw key never leaves the server.
func (s *Service) AIConfigView() (models.AIConfig, bool) {
	cfg := s.store.AIConfig()
	keySet := cfg.APIKey != ""
	cfg.APIKey = ""
	return cfg, keySet
}

// UpdateAIConfig replaces the AI configuration. An empty incoming API key
// means "keep the stored one" so the admin can edit other fields without
// re-entering the credential. Uploaded documents are managed through the
// knowledge-document operations and survive config updates untouched.
func (s *Service) UpdateAIConfig(ctx context.Context, incoming models.AIConfig) error {
	err := validation.ValidateStruct(&incoming,
		validation.Field(&incoming.Provider, validation.Required),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	current := s.store.AIConfig()
	if incoming.APIKey == "" {
		incoming.APIKey = current.APIKey
	}
	incoming.Documents = current.Documents

	if err := s.store.SetAIConfig(ctx, incoming); err != nil {
		return err
	}
	s.logger.Info("ai config updated", "provider", incoming.Provider, "model", incoming.Model)
	return nil
}

// AddKnowledgeDocuments appends extracted documents to the knowledge base.
func (s *Service) AddKnowledgeDocuments(ctx context.Context, docs []models.KnowledgeDocument) ([]models.KnowledgeDocument, error) {
	if len(docs) == 0 {
		return nil, &domain.ValidationError{Message: "no documents provided"}
	}

	now := time.Now().UnixMilli()
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.NewString()
		}
		if docs[i].UploadDate == 0 {
			docs[i].UploadDate = now
		}
	}

	cfg := s.store.AIConfig()
	cfg.Documents = append(cfg.Documents, docs...)
	if err := s.store.SetAIConfig(ctx, cfg); err != nil {
		return nil, err
	}
	s.logger.Info("knowledge documents added", "count", len(docs))
	return docs, nil
}

// DeleteKnowledgeDocument removes one uploaded document by id.
func (s *Service) DeleteKnowledgeDocument(ctx context.Context, id string) error {
	cfg := s.store.AIConfig()

	found := false
	kept := make([]models.KnowledgeDocument, 0, len(cfg.Documents))
	for _, d := range cfg.Documents {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return &domain.NotFoundError{Message: fmt.Sprintf("knowledge document %s not found", id)}
	}

	cfg.Documents = kept
	return s.store.SetAIConfig(ctx, cfg)
}
