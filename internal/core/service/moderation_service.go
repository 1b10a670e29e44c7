package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tastebook/admin-api/internal/api/metrics"
	"github.com/tastebook/admin-api/internal/core/domain"
	"github.com/tastebook/admin-api/internal/core/ports"
)

type moderationService struct {
	recipes  ports.RecipeRepository
	blogs    ports.BlogRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

// NewModerationService returns a ModerationService over the recipe, blog
// and comment repositories.
func NewModerationService(
	recipes ports.RecipeRepository,
	blogs ports.BlogRepository,
	comments ports.CommentRepository,
	log zerolog.Logger,
) ports.ModerationService {
	return &moderationService{recipes: recipes, blogs: blogs, comments: comments, log: log}
}

// --- Recipes ---

func (s *moderationService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.FindAll(ctx)
}

func (s *moderationService) ListFeaturedRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.FindFeatured(ctx)
}

// SetRecipeStatus validates status against the enumerated states before
// touching the store, then applies it atomically.
func (s *moderationService) SetRecipeStatus(ctx context.Context, id string, status string) (*domain.Recipe, error) {
	st := domain.RecipeStatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	recipe, err := s.recipes.SetStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues(string(st)).Inc()
	s.log.Info().Str("recipe_id", id).Str("status", string(st)).Msg("recipe status updated")
	return recipe, nil
}

func (s *moderationService) ApproveRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.SetRecipeStatus(ctx, id, string(domain.StatusApproved))
}

func (s *moderationService) RejectRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.SetRecipeStatus(ctx, id, string(domain.StatusRejected))
}

// SetRecipeFeatured toggles the featured flag. Featured and status are
// independent axes: a rejected recipe keeps its flag and vice versa.
func (s *moderationService) SetRecipeFeatured(ctx context.Context, id string, featured bool) (*domain.Recipe, error) {
	recipe, err := s.recipes.SetFeatured(ctx, id, featured)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("recipe_id", id).Bool("featured", featured).Msg("recipe featured flag updated")
	return recipe, nil
}

func (s *moderationService) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("recipe_id", id).Msg("recipe deleted")
	return nil
}

// --- Blogs ---

func (s *moderationService) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	return s.blogs.FindAll(ctx)
}

func (s *moderationService) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	return s.blogs.FindByID(ctx, id)
}

func (s *moderationService) CreateBlog(ctx context.Context, input ports.CreateBlogInput) (*domain.Blog, error) {
	tags, err := parseTags(input.TagsRaw)
	if err != nil {
		return nil, err
	}

	blog := &domain.Blog{
		Title:     input.Title,
		Content:   input.Content,
		Tags:      tags,
		Author:    input.AuthorID,
		Picture:   input.PicturePath,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	metrics.BlogWritesTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("blog_id", created.ID).Str("author", input.AuthorID).Msg("blog created")
	return created, nil
}

// UpdateBlog applies a partial edit: only supplied fields overwrite, the
// rest keep their stored values. The update is a single atomic write.
func (s *moderationService) UpdateBlog(ctx context.Context, id string, input ports.UpdateBlogInput) (*domain.Blog, error) {
	var update ports.BlogUpdate
	if input.Title != "" {
		update.Title = &input.Title
	}
	if input.Content != "" {
		update.Content = &input.Content
	}
	if input.TagsRaw != "" {
		tags, err := parseTags(input.TagsRaw)
		if err != nil {
			return nil, err
		}
		update.Tags = &tags
	}
	if input.PicturePath != "" {
		update.Picture = &input.PicturePath
	}

	blog, err := s.blogs.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	metrics.BlogWritesTotal.WithLabelValues("update").Inc()
	s.log.Info().Str("blog_id", id).Msg("blog updated")
	return blog, nil
}

func (s *moderationService) DeleteBlog(ctx context.Context, id string) error {
	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}
	metrics.BlogWritesTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("blog_id", id).Msg("blog deleted")
	return nil
}

// --- Comments ---

func (s *moderationService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.FindAll(ctx)
}

// parseTags decodes the serialized tag list submitted by the client
// (a JSON array string, e.g. `["dinner","vegan"]`). An empty payload is an
// empty tag set; a malformed one is a validation failure, never a raw
// decode error.
func parseTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTags, raw)
	}
	return tags, nil
}
