package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tastebook/admin-api/internal/core/domain"
)

const collectionRecipes = "recipes"

// RecipeRepository holds the database handle rather than a single
// collection: resolving creator names touches the users collection too.
type RecipeRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{db: db, col: db.Collection(collectionRecipes)}
}

type mongoRecipe struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	CreatedBy primitive.ObjectID `bson:"created_by,omitempty"`
	Status    string             `bson:"status"`
	Featured  bool               `bson:"featured"`
	Views     int64              `bson:"views"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoRecipe) toDomain() domain.Recipe {
	r := domain.Recipe{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Status:    domain.RecipeStatus(m.Status),
		Featured:  m.Featured,
		Views:     m.Views,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if !m.CreatedBy.IsZero() {
		r.CreatedBy = m.CreatedBy.Hex()
	}
	return r
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]domain.Recipe, error) {
	return r.find(ctx, bson.M{})
}

func (r *RecipeRepository) FindFeatured(ctx context.Context) ([]domain.Recipe, error) {
	return r.find(ctx, bson.M{"featured": true})
}

func (r *RecipeRepository) find(ctx context.Context, filter bson.M) ([]domain.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRecipe
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		if !d.CreatedBy.IsZero() {
			ids = append(ids, d.CreatedBy)
		}
	}
	names, err := userNames(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, len(docs))
	for i, d := range docs {
		recipes[i] = d.toDomain()
		recipes[i].CreatorName = names[d.CreatedBy]
	}
	return recipes, nil
}

func (r *RecipeRepository) FindRecent(ctx context.Context, limit int) ([]domain.Recipe, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"title": 1, "created_at": 1})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent recipes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRecipe
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recent recipes: %w", err)
	}

	recipes := make([]domain.Recipe, len(docs))
	for i, d := range docs {
		recipes[i] = d.toDomain()
	}
	return recipes, nil
}

func (r *RecipeRepository) SetStatus(ctx context.Context, id string, status domain.RecipeStatus) (*domain.Recipe, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"status": string(status)}})
}

func (r *RecipeRepository) SetFeatured(ctx context.Context, id string, featured bool) (*domain.Recipe, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"featured": featured}})
}

// findAndUpdate applies update atomically and returns the post-mutation
// record.
func (r *RecipeRepository) findAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoRecipe
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	recipe := m.toDomain()
	return &recipe, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrRecipeNotFound
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

func (r *RecipeRepository) TopViewed(ctx context.Context, limit int) ([]domain.RecipeStat, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"title": 1, "views": 1})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("top viewed recipes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRecipe
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode top viewed: %w", err)
	}

	stats := make([]domain.RecipeStat, len(docs))
	for i, d := range docs {
		stats[i] = domain.RecipeStat{Title: d.Title, Views: d.Views}
	}
	return stats, nil
}

// EnsureIndexes creates the indexes the admin queries rely on.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "views", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// userNames resolves user ids to display names in one query. Ids that no
// longer resolve are simply absent from the map: a dangling weak reference
// degrades to an empty name instead of failing the caller's projection.
func userNames(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cur, err := db.Collection(collectionUsers).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve user names: %w", err)
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode user names: %w", err)
	}

	for _, d := range docs {
		names[d.ID] = d.Name
	}
	return names, nil
}
