package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tastebook/admin-api/internal/core/domain"
	"github.com/tastebook/admin-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newActivitySvc(recipes *stubRecipeRepo, comments *stubCommentRepo, users *stubUserRepo) ports.ActivityService {
	return NewActivityService(recipes, comments, users, zerolog.Nop())
}

// feedFixture seeds n recipes, n comments and n users with strictly
// interleaved timestamps: the newest entries alternate across kinds.
func feedFixture(n int) (*stubRecipeRepo, *stubCommentRepo, *stubUserRepo) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	recipes := &stubRecipeRepo{}
	comments := &stubCommentRepo{}
	users := newStubUserRepo()

	for i := 0; i < n; i++ {
		recipes.recipes = append(recipes.recipes, domain.Recipe{
			ID:        "r" + strconv.Itoa(i),
			Title:     "recipe " + strconv.Itoa(i),
			CreatedAt: base.Add(time.Duration(3*i) * time.Minute),
		})
		comments.comments = append(comments.comments, domain.Comment{
			ID:         "c" + strconv.Itoa(i),
			Content:    "comment " + strconv.Itoa(i),
			AuthorName: "Reader",
			CreatedAt:  base.Add(time.Duration(3*i+1) * time.Minute),
		})
		id := "u" + strconv.Itoa(i)
		users.users[id] = &domain.User{
			ID:        id,
			Name:      "user " + strconv.Itoa(i),
			Email:     id + "@example.com",
			CreatedAt: base.Add(time.Duration(3*i+2) * time.Minute),
		}
		users.order = append(users.order, id)
	}
	return recipes, comments, users
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestActivityService_FeedCappedAtTen(t *testing.T) {
	recipes, comments, users := feedFixture(5) // 15 candidates
	svc := newActivitySvc(recipes, comments, users)

	items, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity returned error: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected exactly 10 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Fatalf("feed not in descending order at index %d", i)
		}
	}
	// The five oldest candidates must be the ones cut.
	oldest := items[len(items)-1].CreatedAt
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(5 * time.Minute)
	if oldest.Before(cutoff) {
		t.Fatalf("an item older than the cut survived: %v", oldest)
	}
}

func TestActivityService_FewerThanTen(t *testing.T) {
	recipes, comments, users := feedFixture(2) // 6 candidates
	svc := newActivitySvc(recipes, comments, users)

	items, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity returned error: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected all 6 items, got %d", len(items))
	}
}

func TestActivityService_KindsTagged(t *testing.T) {
	recipes, comments, users := feedFixture(1)
	svc := newActivitySvc(recipes, comments, users)

	items, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity returned error: %v", err)
	}

	seen := map[domain.ActivityKind]bool{}
	for _, it := range items {
		seen[it.Kind] = true
		switch it.Kind {
		case domain.ActivityRecipe:
			if it.Title == "" {
				t.Fatalf("recipe item missing title: %+v", it)
			}
		case domain.ActivityComment:
			if it.Content == "" || it.AuthorName == "" {
				t.Fatalf("comment item missing fields: %+v", it)
			}
		case domain.ActivityUser:
			if it.Name == "" || it.Email == "" {
				t.Fatalf("user item missing fields: %+v", it)
			}
		default:
			t.Fatalf("unknown kind %q", it.Kind)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three kinds present, got %v", seen)
	}
}

func TestActivityService_TiesBrokenByKind(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	recipes := &stubRecipeRepo{recipes: []domain.Recipe{{ID: "r1", Title: "tied recipe", CreatedAt: at}}}
	comments := &stubCommentRepo{comments: []domain.Comment{{ID: "c1", Content: "tied comment", AuthorName: "A", CreatedAt: at}}}
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Name: "tied user", Email: "u@example.com", CreatedAt: at}
	users.order = append(users.order, "u1")

	svc := newActivitySvc(recipes, comments, users)
	items, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []domain.ActivityKind{domain.ActivityRecipe, domain.ActivityComment, domain.ActivityUser}
	for i, kind := range want {
		if items[i].Kind != kind {
			t.Fatalf("tie order wrong at %d: want %s, got %s", i, kind, items[i].Kind)
		}
	}
}

func TestActivityService_FetchFailureAborts(t *testing.T) {
	recipes, comments, users := feedFixture(3)
	comments.findRecentErr = errors.New("collection unavailable")
	svc := newActivitySvc(recipes, comments, users)

	items, err := svc.RecentActivity(context.Background())
	if err == nil {
		t.Fatalf("expected error when a sub-fetch fails")
	}
	if items != nil {
		t.Fatalf("no partial feed may be returned, got %d items", len(items))
	}

	users.findRecentErr = errors.New("collection unavailable")
	comments.findRecentErr = nil
	if _, err := svc.RecentActivity(context.Background()); err == nil {
		t.Fatalf("expected error when the user fetch fails")
	}
}
