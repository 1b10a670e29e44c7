package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastebook/admin-api/internal/core/ports"
)

// PictureStore accepts an uploaded picture as an opaque stream and
// returns the public path to record on the entity.
type PictureStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// BlogHandler handles editorial blog requests. Create and update consume
// the multipart form the editorial client submits: title, content, a
// serialized tag list, and an optional picture file.
type BlogHandler struct {
	service  ports.ModerationService
	pictures PictureStore
}

func NewBlogHandler(service ports.ModerationService, pictures PictureStore) *BlogHandler {
	return &BlogHandler{service: service, pictures: pictures}
}

// List handles GET /api/admin/blogs.
//
// @Summary      List all blogs
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Blog
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.ListBlogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get handles GET /api/admin/blogs/:id.
//
// @Summary      Get a blog
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.service.GetBlog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Create handles POST /api/admin/blogs (multipart form).
//
// @Summary      Create a blog
// @Tags         blogs
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title    formData  string  true   "Title"
// @Param        content  formData  string  true   "Content body"
// @Param        tags     formData  string  false  "Tags as a JSON array string"
// @Param        picture  formData  file    false  "Picture"
// @Success      201  {object}  domain.Blog
// @Failure      400  {object}  errorResponse
// @Router       /api/admin/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	authorID, err := callerID(c)
	if err != nil {
		return err
	}

	form := blogFormRequest{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Tags:    c.FormValue("tags"),
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picturePath, err := h.savePicture(c)
	if err != nil {
		return err
	}

	blog, err := h.service.CreateBlog(c.Request().Context(), ports.CreateBlogInput{
		Title:       form.Title,
		Content:     form.Content,
		TagsRaw:     form.Tags,
		AuthorID:    authorID,
		PicturePath: picturePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, blog)
}

// Update handles PUT /api/admin/blogs/:id (multipart form). Partial:
// empty form fields keep their stored values; the picture only changes
// when a new file is uploaded.
//
// @Summary      Update a blog
// @Tags         blogs
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "Blog id"
// @Param        title    formData  string  false  "Title"
// @Param        content  formData  string  false  "Content body"
// @Param        tags     formData  string  false  "Tags as a JSON array string"
// @Param        picture  formData  file    false  "Picture"
// @Success      200  {object}  domain.Blog
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	picturePath, err := h.savePicture(c)
	if err != nil {
		return err
	}

	blog, err := h.service.UpdateBlog(c.Request().Context(), c.Param("id"), ports.UpdateBlogInput{
		Title:       c.FormValue("title"),
		Content:     c.FormValue("content"),
		TagsRaw:     c.FormValue("tags"),
		PicturePath: picturePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /api/admin/blogs/:id.
//
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Blog id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteBlog(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "blog deleted successfully"})
}

// savePicture stores the uploaded picture, if any, and returns its public
// path. A request without a picture field is not an error.
func (h *BlogHandler) savePicture(c echo.Context) (string, error) {
	file, err := c.FormFile("picture")
	if err != nil {
		// Missing field or no multipart body: the picture is optional.
		return "", nil
	}
	return h.pictures.Save(file)
}
