package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecofuture-uz/content-service/internal/api/dto"
	"github.com/ecofuture-uz/content-service/internal/auth"
	"github.com/ecofuture-uz/content-service/internal/service"
	apperrors "github.com/ecofuture-uz/content-service/pkg/util"
)

// BlogHandler serves the public blog and its admin management endpoints.
type BlogHandler struct {
	service *service.BlogService
}

// NewBlogHandler constructs handler.
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{service: blogService}
}

// ListPublished GET /blog.
func (h *BlogHandler) ListPublished(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := h.service.ListPublished(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.BlogPostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, dto.BlogPostFromDomain(&posts[i], false))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetBySlug GET /blog/:slug.
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	post, err := h.service.GetPublishedBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return apperrors.NewNotFound("post", nil)
	}
	return c.JSON(fiber.Map{"data": dto.BlogPostFromDomain(post, true)})
}

// ListAll GET /admin/blog.
func (h *BlogHandler) ListAll(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := h.service.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.BlogPostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, dto.BlogPostFromDomain(&posts[i], true))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /admin/blog.
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	req, err := parseBlogRequest(c)
	if err != nil {
		return err
	}
	post, err := h.service.Create(c.Context(), blogInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.BlogPostFromDomain(post, true)})
}

// Update PUT /admin/blog/:id.
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	req, err := parseBlogRequest(c)
	if err != nil {
		return err
	}
	post, err := h.service.Update(c.Context(), c.Params("id"), blogInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BlogPostFromDomain(post, true)})
}

// Publish POST /admin/blog/:id/publish.
func (h *BlogHandler) Publish(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	post, err := h.service.Publish(c.Context(), principal.Admin.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BlogPostFromDomain(post, true)})
}

// Delete DELETE /admin/blog/:id.
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseBlogRequest(c *fiber.Ctx) (dto.BlogPostRequest, error) {
	var req dto.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return req, apperrors.NewValidationError("title and body required", nil)
	}
	return req, nil
}

func blogInput(req dto.BlogPostRequest) service.BlogInput {
	return service.BlogInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Author:     req.Author,
	}
}

func parsePagination(c *fiber.Ctx) (int, int) {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
