package models

// Snapshot is the full content state as loaded from a persistence backend.
// Nil fields mean the backend has never stored that entity; hydration falls
// back to the built-in seed dataset for those. A non-nil empty list means the
// entity was stored and is genuinely empty (an admin deleted everything).
type Snapshot struct {
	ProjectInfo        *ProjectInfo        `json:"projectInfo"`
	Highlights         []Highlight         `json:"highlights"`
	Achievements       []Achievement       `json:"achievements"`
	TeamMembers        []TeamMember        `json:"teamMembers"`
	LocationSlides     []LocationSlide     `json:"locationSlides"`
	SiteSlides         []SiteSlide         `json:"siteSlides"`
	HeroVideos         []HeroVideo         `json:"heroVideos"`
	ParticipatingUnits []ParticipatingUnit `json:"participatingUnits"`
	AIConfig           *AIConfig           `json:"aiConfig"`
}
