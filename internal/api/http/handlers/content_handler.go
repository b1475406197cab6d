package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-site/internal/api/dto"
	"github.com/spec-kit/portfolio-site/internal/service"
)

// ContentHandler serves the portfolio sections.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// Site handles GET /api/site.
func (h *ContentHandler) Site(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewSiteResponse(h.content.Site())})
}

// Skills handles GET /api/skills.
func (h *ContentHandler) Skills(c *fiber.Ctx) error {
	skills, err := h.content.Skills(c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSkillResponses(skills)})
}

// Projects handles GET /api/projects.
func (h *ContentHandler) Projects(c *fiber.Ctx) error {
	projects := h.content.Projects(c.Query("tag"))
	out := make([]dto.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.NewProjectSummary(p))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Project handles GET /api/projects/:id.
func (h *ContentHandler) Project(c *fiber.Ctx) error {
	detail, err := h.content.Project(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewProjectDetailResponse(detail.Project, detail.LongDescriptionHTML, detail.APIDocumentationHTML),
	})
}
