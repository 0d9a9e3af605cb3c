package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecofuture-uz/content-service/internal/api/dto"
	"github.com/ecofuture-uz/content-service/internal/auth"
	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/service"
	apperrors "github.com/ecofuture-uz/content-service/pkg/util"
)

// ProjectsHandler serves public project pages and admin management.
type ProjectsHandler struct {
	service *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// List GET /projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	var status *domain.ProjectStatus
	if raw := c.Query("status"); raw != "" {
		parsed := domain.ProjectStatus(strings.ToUpper(raw))
		switch parsed {
		case domain.ProjectStatusPlanned, domain.ProjectStatusOngoing, domain.ProjectStatusCompleted:
			status = &parsed
		default:
			return apperrors.NewValidationError("unknown project status", nil)
		}
	}

	projects, err := h.service.List(c.Context(), status)
	if err != nil {
		return err
	}
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, dto.ProjectFromDomain(&projects[i], false))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /projects/:id.
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	project, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.NewNotFound("project", nil)
	}
	return c.JSON(fiber.Map{"data": dto.ProjectFromDomain(project, true)})
}

// Create POST /admin/projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	req, err := parseProjectRequest(c)
	if err != nil {
		return err
	}
	project, err := h.service.Create(c.Context(), principal.Admin.ID, projectInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ProjectFromDomain(project, true)})
}

// Update PUT /admin/projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	req, err := parseProjectRequest(c)
	if err != nil {
		return err
	}
	project, err := h.service.Update(c.Context(), c.Params("id"), projectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ProjectFromDomain(project, true)})
}

// Delete DELETE /admin/projects/:id.
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseProjectRequest(c *fiber.Ctx) (dto.ProjectRequest, error) {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return req, apperrors.NewValidationError("title required", nil)
	}
	return req, nil
}

func projectInput(req dto.ProjectRequest) service.ProjectInput {
	return service.ProjectInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.Image,
		Status:      req.Status,
		StartedAt:   req.StartedAt,
	}
}
