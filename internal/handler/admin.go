package handler

import (
	"log/slog"
	"net/http"

	"bimsite/internal/domain/models"
	"bimsite/internal/httputil"
	"bimsite/internal/providers"
	"bimsite/internal/service/content"
)

// AdminHandler serves the authenticated content management routes.
type AdminHandler struct {
	service  *content.Service
	registry *providers.Registry
	logger   *slog.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(service *content.Service, registry *providers.Registry, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		registry: registry,
		logger:   logger,
	}
}

// UpdateProjectInfo replaces the project information document.
// PUT /api/admin/project-info
func (h *AdminHandler) UpdateProjectInfo(w http.ResponseWriter, r *http.Request) {
	var info models.ProjectInfo
	if err := httputil.ParseJSON(w, r, &info); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateProjectInfo(r.Context(), info); err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, info)
}

// saveEntity implements the shared upsert flow: decode, save through the
// service, echo the stored item (with its assigned id) back.
func saveEntity[T any](w http.ResponseWriter, r *http.Request, save func(*http.Request, T) (T, error)) {
	var item T
	if err := httputil.ParseJSON(w, r, &item); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := save(r, item)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, saved)
}

// deleteEntity implements the shared delete flow. Deletes are idempotent:
// removing an id that is already gone still succeeds.
func deleteEntity(w http.ResponseWriter, r *http.Request, remove func(*http.Request, string) error) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "missing id")
		return
	}

	if err := remove(r, id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PUT /api/admin/highlights
func (h *AdminHandler) SaveHighlight(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.Highlight) (models.Highlight, error) {
		return h.service.SaveHighlight(r.Context(), item)
	})
}

// DELETE /api/admin/highlights/{id}
func (h *AdminHandler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteHighlight(r.Context(), id)
	})
}

// PUT /api/admin/achievements
func (h *AdminHandler) SaveAchievement(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.Achievement) (models.Achievement, error) {
		return h.service.SaveAchievement(r.Context(), item)
	})
}

// DELETE /api/admin/achievements/{id}
func (h *AdminHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteAchievement(r.Context(), id)
	})
}

// PUT /api/admin/team-members
func (h *AdminHandler) SaveTeamMember(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.TeamMember) (models.TeamMember, error) {
		return h.service.SaveTeamMember(r.Context(), item)
	})
}

// DELETE /api/admin/team-members/{id}
func (h *AdminHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteTeamMember(r.Context(), id)
	})
}

// PUT /api/admin/location-slides
func (h *AdminHandler) SaveLocationSlide(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.LocationSlide) (models.LocationSlide, error) {
		return h.service.SaveLocationSlide(r.Context(), item)
	})
}

// DELETE /api/admin/location-slides/{id}
func (h *AdminHandler) DeleteLocationSlide(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteLocationSlide(r.Context(), id)
	})
}

// PUT /api/admin/site-slides
func (h *AdminHandler) SaveSiteSlide(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.SiteSlide) (models.SiteSlide, error) {
		return h.service.SaveSiteSlide(r.Context(), item)
	})
}

// DELETE /api/admin/site-slides/{id}
func (h *AdminHandler) DeleteSiteSlide(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteSiteSlide(r.Context(), id)
	})
}

// PUT /api/admin/hero-videos
func (h *AdminHandler) SaveHeroVideo(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.HeroVideo) (models.HeroVideo, error) {
		return h.service.SaveHeroVideo(r.Context(), item)
	})
}

// DELETE /api/admin/hero-videos/{id}
func (h *AdminHandler) DeleteHeroVideo(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteHeroVideo(r.Context(), id)
	})
}

// PUT /api/admin/participating-units
func (h *AdminHandler) SaveParticipatingUnit(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, func(r *http.Request, item models.ParticipatingUnit) (models.ParticipatingUnit, error) {
		return h.service.SaveParticipatingUnit(r.Context(), item)
	})
}

// DELETE /api/admin/participating-units/{id}
func (h *AdminHandler) DeleteParticipatingUnit(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteParticipatingUnit(r.Context(), id)
	})
}

// aiConfigResponse is the admin view of the AI configuration. The stored
// key never appears; apiKeySet tells the dashboard whether one exists.
type aiConfigResponse struct {
	models.AIConfig
	APIKeySet bool `json:"apiKeySet"`
}

// GetAIConfig returns the AI configuration with the key redacted.
// GET /api/admin/ai-config
func (h *AdminHandler) GetAIConfig(w http.ResponseWriter, r *http.Request) {
	cfg, keySet := h.service.AIConfigView()
	httputil.RespondJSON(w, http.StatusOK, aiConfigResponse{AIConfig: cfg, APIKeySet: keySet})
}

// UpdateAIConfig replaces the AI configuration. An empty apiKey keeps the
// stored one.
// PUT /api/admin/ai-config
func (h *AdminHandler) UpdateAIConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.AIConfig
	if err := httputil.ParseJSON(w, r, &cfg); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateAIConfig(r.Context(), cfg); err != nil {
		handleError(w, err)
		return
	}

	view, keySet := h.service.AIConfigView()
	httputil.RespondJSON(w, http.StatusOK, aiConfigResponse{AIConfig: view, APIKeySet: keySet})
}

// ListProviders returns the provider preset catalog.
// GET /api/admin/ai-providers
func (h *AdminHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.registry.List())
}

// DeleteKnowledgeDocument removes one uploaded knowledge document.
// DELETE /api/admin/knowledge-documents/{id}
func (h *AdminHandler) DeleteKnowledgeDocument(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, func(r *http.Request, id string) error {
		return h.service.DeleteKnowledgeDocument(r.Context(), id)
	})
}
