package dto

import "github.com/spec-kit/portfolio-site/internal/domain"

// SiteResponse carries the hero, about and contact sections.
type SiteResponse struct {
	Profile    ProfileResponse `json:"profile"`
	Navigation []NavLink       `json:"navigation"`
	Socials    []SocialLink    `json:"socials"`
}

type ProfileResponse struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Tagline      string   `json:"tagline"`
	AvatarURL    string   `json:"avatar_url,omitempty"`
	ResumeURL    string   `json:"resume_url,omitempty"`
	About        []string `json:"about"`
	Email        string   `json:"email"`
	Location     string   `json:"location,omitempty"`
	ResponseTime string   `json:"response_time,omitempty"`
}

type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SkillResponse struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type CodeSnippet struct {
	Title    string `json:"title"`
	Code     string `json:"code"`
	Language string `json:"language"`
}

// ProjectSummary is a project card.
type ProjectSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"image_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
}

// ProjectDetailResponse is the project detail view with rendered Markdown.
type ProjectDetailResponse struct {
	ProjectSummary
	LongDescriptionHTML  string        `json:"long_description_html"`
	ArchitectureDiagram  string        `json:"architecture_diagram,omitempty"`
	APIDocumentationHTML string        `json:"api_documentation_html"`
	CodeSnippets         []CodeSnippet `json:"code_snippets"`
}

// NewSiteResponse maps site content.
func NewSiteResponse(site *domain.Site) SiteResponse {
	p := site.Profile
	resp := SiteResponse{
		Profile: ProfileResponse{
			Name:         p.Name,
			Title:        p.Title,
			Tagline:      p.Tagline,
			AvatarURL:    p.AvatarURL,
			ResumeURL:    p.ResumeURL,
			About:        p.About,
			Email:        p.Email,
			Location:     p.Location,
			ResponseTime: p.ResponseTime,
		},
		Navigation: make([]NavLink, 0, len(site.Navigation)),
		Socials:    make([]SocialLink, 0, len(site.Socials)),
	}
	for _, n := range site.Navigation {
		resp.Navigation = append(resp.Navigation, NavLink{Name: n.Name, Href: n.Href})
	}
	for _, s := range site.Socials {
		resp.Socials = append(resp.Socials, SocialLink{Label: s.Label, URL: s.URL})
	}
	return resp
}

// NewSkillResponses maps skills.
func NewSkillResponses(skills []domain.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{Name: s.Name, Level: s.Level, Category: string(s.Category)})
	}
	return out
}

// NewProjectSummary maps a project card.
func NewProjectSummary(p domain.Project) ProjectSummary {
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	return ProjectSummary{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: techs,
		ImageURL:     p.ImageURL,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
	}
}

// NewProjectDetailResponse maps a rendered project.
func NewProjectDetailResponse(p domain.Project, longHTML, docsHTML string) ProjectDetailResponse {
	snippets := make([]CodeSnippet, 0, len(p.CodeSnippets))
	for _, s := range p.CodeSnippets {
		snippets = append(snippets, CodeSnippet{Title: s.Title, Code: s.Code, Language: s.Language})
	}
	return ProjectDetailResponse{
		ProjectSummary:       NewProjectSummary(p),
		LongDescriptionHTML:  longHTML,
		ArchitectureDiagram:  p.ArchitectureDiagram,
		APIDocumentationHTML: docsHTML,
		CodeSnippets:         snippets,
	}
}
