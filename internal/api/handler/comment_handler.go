package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastebook/admin-api/internal/core/ports"
)

// CommentHandler serves the read-only comment listing.
type CommentHandler struct {
	service ports.ModerationService
}

func NewCommentHandler(service ports.ModerationService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /api/admin/comments.
//
// @Summary      List all comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Comment
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
