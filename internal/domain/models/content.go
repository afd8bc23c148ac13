package models

// ProjectInfo is the singleton record describing the showcased project.
// Media URLs may be remote URLs, local /uploads/ paths, or inline data URLs.
type ProjectInfo struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	TotalArea    string `json:"totalArea"`
	Investment   string `json:"investment"`
	LogoURL      string `json:"logoUrl,omitempty"`
	NavTitle     string `json:"navTitle,omitempty"`
	NavSubtitle  string `json:"navSubtitle,omitempty"`
	OrgChartURL  string `json:"orgChartUrl,omitempty"`
	TeamPhotoURL string `json:"teamPhotoUrl,omitempty"`
	BIMModelURL  string `json:"bimModelUrl,omitempty"`
	BIMOverview  string `json:"bimOverview,omitempty"`
}

// ProjectFile is a downloadable attachment on a highlight (drawings, reports,
// models). Size is a display string ("12MB"), not a byte count.
type ProjectFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
	URL  string `json:"url"`
}

// Highlight is one featured technology application.
type Highlight struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Summary         string            `json:"summary"`
	FullDescription string            `json:"fullDescription"`
	Thumbnail       string            `json:"thumbnail"`
	Images          []string          `json:"images"`
	Files           []ProjectFile     `json:"files"`
	TechnicalSpecs  map[string]string `json:"technicalSpecs,omitempty"`
	VideoURL        string            `json:"videoUrl,omitempty"`
}

func (h Highlight) Key() string { return h.ID }

// AchievementType classifies an achievement entry.
type AchievementType string

const (
	AchievementAward       AchievementType = "award"
	AchievementPublication AchievementType = "publication"
	AchievementVisit       AchievementType = "visit"
)

// AchievementTypes lists the accepted values for validation.
var AchievementTypes = []AchievementType{
	AchievementAward,
	AchievementPublication,
	AchievementVisit,
}

type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        AchievementType `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

func (a Achievement) Key() string { return a.ID }

// TeamMember belongs to the org chart. ParentID forms an informal tree used
// only for display; it is not validated to exist or to be acyclic.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Contact  string `json:"contact"`
	Avatar   string `json:"avatar,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}

func (m TeamMember) Key() string { return m.ID }

// LocationSlide is a carousel item on the location section.
type LocationSlide struct {
	ID          FlexID `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName,omitempty"`
}

func (s LocationSlide) Key() string { return string(s.ID) }

// SiteSlide is a carousel item on the construction-site section.
type SiteSlide struct {
	ID    FlexID `json:"id"`
	Image string `json:"image"`
	Tag   string `json:"tag"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

func (s SiteSlide) Key() string { return string(s.ID) }

// HeroVideo rotates in the hero section.
type HeroVideo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
	CoverURL string `json:"coverUrl"`
}

func (v HeroVideo) Key() string { return v.ID }

// UnitCategory classifies a participating unit for the footer logo wall.
type UnitCategory string

const (
	UnitOwner       UnitCategory = "建设单位"
	UnitDesigner    UnitCategory = "设计单位"
	UnitCoordinator UnitCategory = "总控单位"
	UnitContractor  UnitCategory = "总包单位"
	UnitSupervisor  UnitCategory = "监理单位"
)

// UnitCategories lists the accepted values for validation.
var UnitCategories = []UnitCategory{
	UnitOwner,
	UnitDesigner,
	UnitCoordinator,
	UnitContractor,
	UnitSupervisor,
}

type ParticipatingUnit struct {
	ID       string       `json:"id"`
	Category UnitCategory `json:"category"`
	Name     string       `json:"name"`
	Logo     string       `json:"logo"`
}

func (u ParticipatingUnit) Key() string { return u.ID }
