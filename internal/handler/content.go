package handler

import (
	"log/slog"
	"net/http"

	"bimsite/internal/httputil"
	"bimsite/internal/service/content"
)

// ContentHandler serves the public read-only content routes.
type ContentHandler struct {
	service *content.Service
	logger  *slog.Logger
}

// NewContentHandler creates a public content handler.
func NewContentHandler(service *content.Service, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{service: service, logger: logger}
}

// GetAll returns the full public payload in one response.
// GET /api/content
func (h *ContentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.PublicContent())
}

// GetProjectInfo returns the project information document.
// GET /api/content/project-info
func (h *ContentHandler) GetProjectInfo(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.ProjectInfo())
}

// GetHighlights returns all highlights.
// GET /api/content/highlights
func (h *ContentHandler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.Highlights())
}

// GetHighlight returns one highlight by id.
// GET /api/content/highlights/{id}
func (h *ContentHandler) GetHighlight(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Highlight(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, item)
}

// GetAchievements returns all achievements.
// GET /api/content/achievements
func (h *ContentHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.Achievements())
}

// GetTeamMembers returns the flat team member list.
// GET /api/content/team-members
func (h *ContentHandler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.TeamMembers())
}

// GetTeamTree returns the team arranged as an org chart.
// GET /api/content/team-tree
func (h *ContentHandler) GetTeamTree(w http.ResponseWriter, r *http.Request) {
	tree := h.service.TeamTree()
	if tree == nil {
		tree = []*content.TreeNode{}
	}
	httputil.RespondJSON(w, http.StatusOK, tree)
}

// GetLocationSlides returns the location carousel slides.
// GET /api/content/location-slides
func (h *ContentHandler) GetLocationSlides(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.LocationSlides())
}

// GetSiteSlides returns the construction-progress slides.
// GET /api/content/site-slides
func (h *ContentHandler) GetSiteSlides(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.SiteSlides())
}

// GetHeroVideos returns the hero section videos.
// GET /api/content/hero-videos
func (h *ContentHandler) GetHeroVideos(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.HeroVideos())
}

// GetParticipatingUnits returns the participating units.
// GET /api/content/participating-units
func (h *ContentHandler) GetParticipatingUnits(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.ParticipatingUnits())
}
