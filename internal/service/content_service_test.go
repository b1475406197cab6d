package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-site/internal/content"
	"github.com/spec-kit/portfolio-site/internal/domain"
	apperrors "github.com/spec-kit/portfolio-site/pkg/util/errorutil"
)

func testSite() *domain.Site {
	return &domain.Site{
		Profile: domain.Profile{Name: "Test"},
		Skills: []domain.Skill{
			{Name: "Go", Level: 70, Category: domain.SkillCategoryBackend},
			{Name: "React", Level: 75, Category: domain.SkillCategoryFrontend},
			{Name: "PHP", Level: 85, Category: domain.SkillCategoryBackend},
		},
		Projects: []domain.Project{
			{ID: "api", Title: "API", Technologies: []string{"Go", "Redis"}, LongDescription: "A **fast** API.", APIDocumentation: "# Users"},
			{ID: "shop", Title: "Shop", Technologies: []string{"PHP"}},
		},
	}
}

func TestContentSkillsByCategory(t *testing.T) {
	svc := NewContentService(testSite(), nil)

	all, err := svc.Skills("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	backend, err := svc.Skills("Backend")
	require.NoError(t, err)
	require.Len(t, backend, 2)
	assert.Equal(t, "Go", backend[0].Name)
	assert.Equal(t, "PHP", backend[1].Name)

	other, err := svc.Skills("other")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = svc.Skills("cooking")
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestContentProjectsByTag(t *testing.T) {
	svc := NewContentService(testSite(), nil)

	assert.Len(t, svc.Projects(""), 2)

	redis := svc.Projects("redis")
	require.Len(t, redis, 1)
	assert.Equal(t, "api", redis[0].ID)

	assert.Empty(t, svc.Projects("Rust"))
}

func TestContentProjectDetail(t *testing.T) {
	svc := NewContentService(testSite(), content.NewRenderer())

	detail, err := svc.Project("api")
	require.NoError(t, err)
	assert.Contains(t, detail.LongDescriptionHTML, "<strong>fast</strong>")
	assert.Contains(t, detail.APIDocumentationHTML, "<h1")
	assert.Equal(t, "API", detail.Title)

	empty, err := svc.Project("shop")
	require.NoError(t, err)
	assert.Empty(t, empty.APIDocumentationHTML)

	_, err = svc.Project("missing")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}
