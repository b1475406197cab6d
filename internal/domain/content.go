package domain

// SkillCategory groups skills on the skills section.
type SkillCategory string

const (
	SkillCategoryBackend  SkillCategory = "backend"
	SkillCategoryFrontend SkillCategory = "frontend"
	SkillCategoryDatabase SkillCategory = "database"
	SkillCategoryOther    SkillCategory = "other"
)

// Valid reports whether c is a known category.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillCategoryBackend, SkillCategoryFrontend, SkillCategoryDatabase, SkillCategoryOther:
		return true
	}
	return false
}

// Skill is a single proficiency entry.
type Skill struct {
	Name     string        `yaml:"name"`
	Level    int           `yaml:"level"`
	Category SkillCategory `yaml:"category"`
}

// CodeSnippet is an excerpt shown in a project's detail view.
type CodeSnippet struct {
	Title    string `yaml:"title"`
	Code     string `yaml:"code"`
	Language string `yaml:"language"`
}

// Project is a portfolio entry. LongDescription and APIDocumentation are Markdown.
type Project struct {
	ID                  string        `yaml:"id"`
	Title               string        `yaml:"title"`
	Description         string        `yaml:"description"`
	LongDescription     string        `yaml:"long_description"`
	Technologies        []string      `yaml:"technologies"`
	ImageURL            string        `yaml:"image_url"`
	ArchitectureDiagram string        `yaml:"architecture_diagram"`
	APIDocumentation    string        `yaml:"api_documentation"`
	CodeSnippets        []CodeSnippet `yaml:"code_snippets"`
	GithubURL           string        `yaml:"github_url"`
	LiveURL             string        `yaml:"live_url"`
}

// SocialLink points at an external profile.
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// NavLink is a header anchor.
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Profile holds hero and about section data.
type Profile struct {
	Name         string   `yaml:"name"`
	Title        string   `yaml:"title"`
	Tagline      string   `yaml:"tagline"`
	AvatarURL    string   `yaml:"avatar_url"`
	ResumeURL    string   `yaml:"resume_url"`
	About        []string `yaml:"about"`
	Email        string   `yaml:"email"`
	Location     string   `yaml:"location"`
	ResponseTime string   `yaml:"response_time"`
}

// Site is the full content of the portfolio page.
type Site struct {
	Profile    Profile      `yaml:"profile"`
	Navigation []NavLink    `yaml:"navigation"`
	Socials    []SocialLink `yaml:"socials"`
	Skills     []Skill      `yaml:"skills"`
	Projects   []Project    `yaml:"projects"`
}
