package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tastebook/admin-api/internal/core/domain"
	"github.com/tastebook/admin-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubModerationService struct {
	listRecipesFn   func(ctx context.Context) ([]domain.Recipe, error)
	listFeaturedFn  func(ctx context.Context) ([]domain.Recipe, error)
	setStatusFn     func(ctx context.Context, id, status string) (*domain.Recipe, error)
	approveFn       func(ctx context.Context, id string) (*domain.Recipe, error)
	rejectFn        func(ctx context.Context, id string) (*domain.Recipe, error)
	setFeaturedFn   func(ctx context.Context, id string, featured bool) (*domain.Recipe, error)
	deleteRecipeFn  func(ctx context.Context, id string) error
	listBlogsFn     func(ctx context.Context) ([]domain.Blog, error)
	getBlogFn       func(ctx context.Context, id string) (*domain.Blog, error)
	createBlogFn    func(ctx context.Context, input ports.CreateBlogInput) (*domain.Blog, error)
	updateBlogFn    func(ctx context.Context, id string, input ports.UpdateBlogInput) (*domain.Blog, error)
	deleteBlogFn    func(ctx context.Context, id string) error
	listCommentsFn  func(ctx context.Context) ([]domain.Comment, error)
}

func (s *stubModerationService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.listRecipesFn(ctx)
}

func (s *stubModerationService) ListFeaturedRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.listFeaturedFn(ctx)
}

func (s *stubModerationService) SetRecipeStatus(ctx context.Context, id, status string) (*domain.Recipe, error) {
	return s.setStatusFn(ctx, id, status)
}

func (s *stubModerationService) ApproveRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.approveFn(ctx, id)
}

func (s *stubModerationService) RejectRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.rejectFn(ctx, id)
}

func (s *stubModerationService) SetRecipeFeatured(ctx context.Context, id string, featured bool) (*domain.Recipe, error) {
	return s.setFeaturedFn(ctx, id, featured)
}

func (s *stubModerationService) DeleteRecipe(ctx context.Context, id string) error {
	return s.deleteRecipeFn(ctx, id)
}

func (s *stubModerationService) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	return s.listBlogsFn(ctx)
}

func (s *stubModerationService) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	return s.getBlogFn(ctx, id)
}

func (s *stubModerationService) CreateBlog(ctx context.Context, input ports.CreateBlogInput) (*domain.Blog, error) {
	return s.createBlogFn(ctx, input)
}

func (s *stubModerationService) UpdateBlog(ctx context.Context, id string, input ports.UpdateBlogInput) (*domain.Blog, error) {
	return s.updateBlogFn(ctx, id, input)
}

func (s *stubModerationService) DeleteBlog(ctx context.Context, id string) error {
	return s.deleteBlogFn(ctx, id)
}

func (s *stubModerationService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	return s.listCommentsFn(ctx)
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRecipeHandler_SetStatus_Success(t *testing.T) {
	stub := &stubModerationService{
		setStatusFn: func(ctx context.Context, id, status string) (*domain.Recipe, error) {
			if id != "r1" || status != "approved" {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Recipe{ID: id, Status: domain.StatusApproved}, nil
		},
	}
	h := NewRecipeHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/recipes/r1/status", `{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := h.SetStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.Recipe
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != domain.StatusApproved {
		t.Fatalf("unexpected status in response: %s", resp.Status)
	}
}

func TestRecipeHandler_SetStatus_RejectsUnknownValue(t *testing.T) {
	stub := &stubModerationService{
		setStatusFn: func(ctx context.Context, id, status string) (*domain.Recipe, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewRecipeHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/recipes/r1/status", `{"status":"published"}`)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	err := h.SetStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestRecipeHandler_SetStatus_NotFoundPropagates(t *testing.T) {
	stub := &stubModerationService{
		setStatusFn: func(ctx context.Context, id, status string) (*domain.Recipe, error) {
			return nil, domain.ErrRecipeNotFound
		},
	}
	h := NewRecipeHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/recipes/ghost/status", `{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.SetStatus(c); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound to propagate, got %v", err)
	}
}

func TestRecipeHandler_ApproveAndReject(t *testing.T) {
	stub := &stubModerationService{
		approveFn: func(ctx context.Context, id string) (*domain.Recipe, error) {
			return &domain.Recipe{ID: id, Status: domain.StatusApproved}, nil
		},
		rejectFn: func(ctx context.Context, id string) (*domain.Recipe, error) {
			return &domain.Recipe{ID: id, Status: domain.StatusRejected}, nil
		},
	}
	h := NewRecipeHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/recipes/r1/approve", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.Approve(c); err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newTestContext(t, http.MethodPut, "/api/admin/recipes/r1/reject", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.Reject(c); err != nil {
		t.Fatalf("reject error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"rejected"`) {
		t.Fatalf("expected rejected status in body: %s", rec.Body.String())
	}
}

func TestRecipeHandler_FeatureToggle(t *testing.T) {
	var gotFeatured []bool
	stub := &stubModerationService{
		setFeaturedFn: func(ctx context.Context, id string, featured bool) (*domain.Recipe, error) {
			gotFeatured = append(gotFeatured, featured)
			return &domain.Recipe{ID: id, Featured: featured}, nil
		},
	}
	h := NewRecipeHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/recipes/r1/feature", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.Feature(c); err != nil {
		t.Fatalf("feature error: %v", err)
	}

	c, _ = newTestContext(t, http.MethodPut, "/api/admin/recipes/r1/unfeature", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.Unfeature(c); err != nil {
		t.Fatalf("unfeature error: %v", err)
	}

	if len(gotFeatured) != 2 || gotFeatured[0] != true || gotFeatured[1] != false {
		t.Fatalf("unexpected featured sequence: %v", gotFeatured)
	}
}

func TestRecipeHandler_Delete(t *testing.T) {
	stub := &stubModerationService{
		deleteRecipeFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	h := NewRecipeHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/admin/recipes/r1", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "recipe deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
