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

// VolunteersHandler serves the public signup form and the admin review list.
type VolunteersHandler struct {
	service *service.VolunteerService
}

// NewVolunteersHandler constructs handler.
func NewVolunteersHandler(volunteerService *service.VolunteerService) *VolunteersHandler {
	return &VolunteersHandler{service: volunteerService}
}

// Submit POST /volunteers.
func (h *VolunteersHandler) Submit(c *fiber.Ctx) error {
	var req dto.VolunteerSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	submission, err := h.service.Submit(c.Context(), service.VolunteerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.VolunteerFromDomain(submission)})
}

// List GET /admin/volunteers.
func (h *VolunteersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	var status *domain.VolunteerStatus
	if raw := c.Query("status"); raw != "" {
		parsed := domain.VolunteerStatus(strings.ToUpper(raw))
		switch parsed {
		case domain.VolunteerStatusNew, domain.VolunteerStatusReviewed,
			domain.VolunteerStatusAccepted, domain.VolunteerStatusDeclined:
			status = &parsed
		default:
			return apperrors.NewValidationError("unknown volunteer status", nil)
		}
	}

	submissions, err := h.service.List(c.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.VolunteerResponse, 0, len(submissions))
	for i := range submissions {
		items = append(items, dto.VolunteerFromDomain(&submissions[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Review PATCH /admin/volunteers/:id.
func (h *VolunteersHandler) Review(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.VolunteerReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	switch req.Status {
	case domain.VolunteerStatusReviewed, domain.VolunteerStatusAccepted, domain.VolunteerStatusDeclined:
	default:
		return apperrors.NewValidationError("status must be REVIEWED, ACCEPTED or DECLINED", nil)
	}

	submission, err := h.service.Review(c.Context(), principal.Admin.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.VolunteerFromDomain(submission)})
}
