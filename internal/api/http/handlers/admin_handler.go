package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-site/internal/api/dto"
	"github.com/spec-kit/portfolio-site/internal/observability"
	"github.com/spec-kit/portfolio-site/internal/service"
)

// AdminHandler exposes the contact inbox.
type AdminHandler struct {
	auth    *service.AuthService
	contact *service.ContactService
	metrics *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService, contact *service.ContactService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{auth: authService, contact: contact, metrics: metrics}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	principal, token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"username": principal.Username,
			"auth":     dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// ListMessages handles GET /admin/messages.
func (h *AdminHandler) ListMessages(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	page, err := h.contact.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}

	resp := dto.ContactMessageList{
		Items:  make([]dto.ContactMessageResponse, 0, len(page.Items)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, dto.NewContactMessageResponse(item))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// GetMessage handles GET /admin/messages/:id.
func (h *AdminHandler) GetMessage(c *fiber.Ctx) error {
	sub, err := h.contact.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContactMessageResponse(*sub)})
}

// Metrics handles GET /admin/metrics.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.metrics.Snapshot()})
}
