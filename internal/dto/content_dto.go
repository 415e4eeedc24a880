package dto

// ProfileResponse represents the about/profile payload rendered on the site.
type ProfileResponse struct {
	Name       string            `json:"name"`
	Headline   string            `json:"headline"`
	About      string            `json:"about"`
	Skills     []string          `json:"skills"`
	Links      map[string]string `json:"links,omitempty"`
	Experience []ExperienceItem  `json:"experience"`
	Education  []EducationItem   `json:"education"`
}

// ExperienceItem describes one work experience entry.
type ExperienceItem struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// EducationItem describes one education entry.
type EducationItem struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Bullets     []string `json:"bullets"`
}

// ProjectResponse represents one portfolio project.
type ProjectResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
}
