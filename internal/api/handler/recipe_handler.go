package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastebook/admin-api/internal/core/ports"
)

// RecipeHandler handles recipe moderation requests.
type RecipeHandler struct {
	service ports.ModerationService
}

func NewRecipeHandler(service ports.ModerationService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List handles GET /api/admin/recipes.
//
// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Recipe
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.service.ListRecipes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Featured handles GET /api/admin/recipes/featured.
//
// @Summary      List featured recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Recipe
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/recipes/featured [get]
func (h *RecipeHandler) Featured(c echo.Context) error {
	recipes, err := h.service.ListFeaturedRecipes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// SetStatus handles PUT /api/admin/recipes/:id/status.
//
// @Summary      Set a recipe's moderation status
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Recipe id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Recipe
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/recipes/{id}/status [put]
func (h *RecipeHandler) SetStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.service.SetRecipeStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Approve handles PUT /api/admin/recipes/:id/approve.
//
// @Summary      Approve a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Recipe id"
// @Success      200  {object}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/recipes/{id}/approve [put]
func (h *RecipeHandler) Approve(c echo.Context) error {
	recipe, err := h.service.ApproveRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Reject handles PUT /api/admin/recipes/:id/reject.
//
// @Summary      Reject a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Recipe id"
// @Success      200  {object}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/recipes/{id}/reject [put]
func (h *RecipeHandler) Reject(c echo.Context) error {
	recipe, err := h.service.RejectRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Feature handles PUT /api/admin/recipes/:id/feature.
//
// @Summary      Feature a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Recipe id"
// @Success      200  {object}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/recipes/{id}/feature [put]
func (h *RecipeHandler) Feature(c echo.Context) error {
	recipe, err := h.service.SetRecipeFeatured(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Unfeature handles PUT /api/admin/recipes/:id/unfeature.
//
// @Summary      Unfeature a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Recipe id"
// @Success      200  {object}  domain.Recipe
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/recipes/{id}/unfeature [put]
func (h *RecipeHandler) Unfeature(c echo.Context) error {
	recipe, err := h.service.SetRecipeFeatured(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Delete handles DELETE /api/admin/recipes/:id.
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Recipe id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteRecipe(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "recipe deleted successfully"})
}
