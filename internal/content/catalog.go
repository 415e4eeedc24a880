package content

import "github.com/noah-isme/portfolio-go-api/internal/dto"

// Catalog holds the static portfolio content rendered by the site.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	Profile  dto.ProfileResponse
	Projects []dto.ProjectResponse
}

// Default returns the portfolio content served by the public endpoints.
func Default() Catalog {
	return Catalog{
		Profile: dto.ProfileResponse{
			Name:     "Noah Pratama",
			Headline: "Full-stack developer",
			About: "Software developer focused on web services and tooling. " +
				"I enjoy building small, reliable systems and writing about what I learn along the way.",
			Skills: []string{"Go", "TypeScript", "React", "PostgreSQL", "Docker"},
			Links: map[string]string{
				"github":   "https://github.com/noah-isme",
				"linkedin": "https://linkedin.com/in/noah-isme",
			},
			Experience: []dto.ExperienceItem{
				{
					Title:     "Backend Developer",
					Company:   "Freelance",
					StartDate: "Jan 2023",
					EndDate:   "Present",
					Bullets: []string{
						"Designed and shipped REST APIs for small businesses",
						"Automated deployment pipelines and monitoring for client projects",
					},
				},
				{
					Title:     "Teaching Assistant",
					Company:   "GEMA Coding Lab",
					StartDate: "Aug 2021",
					EndDate:   "Dec 2022",
					Bullets: []string{
						"Mentored students through web development assignments",
						"Built internal grading and submission tooling",
					},
				},
			},
			Education: []dto.EducationItem{
				{
					Degree:      "Bachelor of Computer Science",
					Institution: "State University",
					StartDate:   "Sept 2019",
					EndDate:     "May 2023",
					Bullets: []string{
						"Coursework: data structures, algorithms, distributed systems",
					},
				},
			},
		},
		Projects: []dto.ProjectResponse{
			{
				Slug:        "portfolio-api",
				Title:       "Portfolio API",
				Description: "The service behind this site: static content endpoints and a contact form relay.",
				Tags:        []string{"go", "fiber", "smtp"},
				RepoURL:     "https://github.com/noah-isme/portfolio-go-api",
			},
			{
				Slug:        "gema-go-api",
				Title:       "GEMA Learning Platform",
				Description: "Backend for a coding education platform with assignments, submissions and realtime features.",
				Tags:        []string{"go", "postgres", "redis"},
				RepoURL:     "https://github.com/noah-isme/gema-go-api",
			},
			{
				Slug:        "toko-api",
				Title:       "Toko Commerce API",
				Description: "A small commerce backend with orders, inventory and transactional email.",
				Tags:        []string{"go", "sqlite"},
			},
		},
	}
}
