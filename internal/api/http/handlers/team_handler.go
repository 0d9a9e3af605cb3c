package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ecofuture-uz/content-service/internal/api/dto"
	"github.com/ecofuture-uz/content-service/internal/auth"
	"github.com/ecofuture-uz/content-service/internal/roster"
	"github.com/ecofuture-uz/content-service/internal/service"
	apperrors "github.com/ecofuture-uz/content-service/pkg/util"
)

// TeamHandler serves the public team page and the admin photo operations.
type TeamHandler struct {
	service *service.TeamService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{service: teamService}
}

// GetTeam GET /team.
func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	opts, err := parseViewQuery(c)
	if err != nil {
		return err
	}
	members := h.service.View(opts)
	return c.JSON(fiber.Map{"data": dto.TeamViewResponse{
		Members:    dto.TeamMembersFromDomain(members),
		Categories: h.service.Categories(),
		Total:      len(h.service.Roster()),
	}})
}

// ListRoster GET /admin/team. Returns the full roster in canonical order.
func (h *TeamHandler) ListRoster(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.TeamMembersFromDomain(h.service.Roster())})
}

// UpdatePhoto PUT /admin/team/:id/photo.
func (h *TeamHandler) UpdatePhoto(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid member id", nil)
	}
	var req dto.UpdatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Image == "" {
		return apperrors.NewValidationError("image required", nil)
	}

	members := h.service.UpdatePhoto(c.Context(), principal.Admin.ID, memberID, req.Image)
	return c.JSON(fiber.Map{"data": dto.TeamMembersFromDomain(members)})
}

// UploadPhoto POST /admin/team/:id/photo/upload. Records the reference an
// uploaded file will be served under; no image bytes are processed here.
func (h *TeamHandler) UploadPhoto(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid member id", nil)
	}
	var req dto.UploadPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FileName == "" {
		return apperrors.NewValidationError("file_name required", nil)
	}

	ref, members := h.service.AttachUpload(c.Context(), principal.Admin.ID, memberID, req.FileName)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"image":   ref,
		"members": dto.TeamMembersFromDomain(members),
	}})
}

func parseViewQuery(c *fiber.Ctx) (roster.ViewOptions, error) {
	opts := roster.ViewOptions{
		Category: c.Query("category", roster.CategoryAll),
		Search:   c.Query("q"),
	}

	switch sortBy := c.Query("sort_by"); sortBy {
	case "":
	case string(roster.SortByName), string(roster.SortByRole), string(roster.SortByCategory):
		opts.SortBy = roster.SortKey(sortBy)
	default:
		return opts, apperrors.NewValidationError("sort_by must be name, role or category", nil)
	}

	switch direction := c.Query("direction"); direction {
	case "", string(roster.Ascending):
		opts.Direction = roster.Ascending
	case string(roster.Descending):
		opts.Direction = roster.Descending
	default:
		return opts, apperrors.NewValidationError("direction must be asc or desc", nil)
	}

	return opts, nil
}
