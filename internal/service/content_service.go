package service

import (
	"strings"

	"github.com/spec-kit/portfolio-site/internal/content"
	"github.com/spec-kit/portfolio-site/internal/domain"
	apperrors "github.com/spec-kit/portfolio-site/pkg/util/errorutil"
)

// ProjectDetail is a project with its Markdown fields rendered.
type ProjectDetail struct {
	domain.Project
	LongDescriptionHTML  string
	APIDocumentationHTML string
}

// ContentService answers read-only queries over the site content.
type ContentService struct {
	site     *domain.Site
	renderer *content.Renderer
}

// NewContentService wraps loaded site content.
func NewContentService(site *domain.Site, renderer *content.Renderer) *ContentService {
	if renderer == nil {
		renderer = content.NewRenderer()
	}
	return &ContentService{site: site, renderer: renderer}
}

// Site returns the full content.
func (s *ContentService) Site() *domain.Site {
	return s.site
}

// Skills returns skills in category, or all when category is empty.
func (s *ContentService) Skills(category string) ([]domain.Skill, error) {
	if category == "" {
		return s.site.Skills, nil
	}
	cat := domain.SkillCategory(strings.ToLower(category))
	if !cat.Valid() {
		return nil, apperrors.NewValidationError("unknown skill category", map[string]any{"category": category})
	}
	out := make([]domain.Skill, 0, len(s.site.Skills))
	for _, skill := range s.site.Skills {
		if skill.Category == cat {
			out = append(out, skill)
		}
	}
	return out, nil
}

// Projects returns projects using tag (case-insensitive), or all when tag is empty.
func (s *ContentService) Projects(tag string) []domain.Project {
	if tag == "" {
		return s.site.Projects
	}
	out := make([]domain.Project, 0, len(s.site.Projects))
	for _, p := range s.site.Projects {
		for _, tech := range p.Technologies {
			if strings.EqualFold(tech, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Project returns one project with rendered Markdown.
func (s *ContentService) Project(id string) (*ProjectDetail, error) {
	for _, p := range s.site.Projects {
		if p.ID != id {
			continue
		}
		long, err := s.renderer.Render(p.LongDescription)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		docs, err := s.renderer.Render(p.APIDocumentation)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		return &ProjectDetail{Project: p, LongDescriptionHTML: long, APIDocumentationHTML: docs}, nil
	}
	return nil, apperrors.NewNotFound("project", map[string]any{"id": id})
}
