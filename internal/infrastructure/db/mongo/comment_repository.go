package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tastebook/admin-api/internal/core/domain"
)

const collectionComments = "comments"

// CommentRepository holds the database handle: resolving author names and
// recipe titles touches the users and recipes collections.
type CommentRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{db: db, col: db.Collection(collectionComments)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	User      primitive.ObjectID `bson:"user,omitempty"`
	Recipe    primitive.ObjectID `bson:"recipe,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoComment) toDomain() domain.Comment {
	c := domain.Comment{
		ID:        m.ID.Hex(),
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if !m.User.IsZero() {
		c.Author = m.User.Hex()
	}
	if !m.Recipe.IsZero() {
		c.Recipe = m.Recipe.Hex()
	}
	return c
}

func (r *CommentRepository) FindAll(ctx context.Context) ([]domain.Comment, error) {
	docs, err := r.find(ctx, 0)
	if err != nil {
		return nil, err
	}
	return r.resolve(ctx, docs, true)
}

func (r *CommentRepository) FindRecent(ctx context.Context, limit int) ([]domain.Comment, error) {
	docs, err := r.find(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	return r.resolve(ctx, docs, false)
}

func (r *CommentRepository) find(ctx context.Context, limit int64) ([]mongoComment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoComment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return docs, nil
}

// resolve joins author names (and optionally recipe titles) onto the
// comments. Dangling references yield empty names/titles.
func (r *CommentRepository) resolve(ctx context.Context, docs []mongoComment, withRecipes bool) ([]domain.Comment, error) {
	userIDs := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		if !d.User.IsZero() {
			userIDs = append(userIDs, d.User)
		}
	}
	names, err := userNames(ctx, r.db, userIDs)
	if err != nil {
		return nil, err
	}

	var titles map[primitive.ObjectID]string
	if withRecipes {
		recipeIDs := make([]primitive.ObjectID, 0, len(docs))
		for _, d := range docs {
			if !d.Recipe.IsZero() {
				recipeIDs = append(recipeIDs, d.Recipe)
			}
		}
		titles, err = r.recipeTitles(ctx, recipeIDs)
		if err != nil {
			return nil, err
		}
	}

	comments := make([]domain.Comment, len(docs))
	for i, d := range docs {
		comments[i] = d.toDomain()
		comments[i].AuthorName = names[d.User]
		if withRecipes {
			comments[i].RecipeTitle = titles[d.Recipe]
		}
	}
	return comments, nil
}

func (r *CommentRepository) recipeTitles(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	titles := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	opts := options.Find().SetProjection(bson.M{"title": 1})
	cur, err := r.db.Collection(collectionRecipes).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve recipe titles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Title string             `bson:"title"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipe titles: %w", err)
	}

	for _, d := range docs {
		titles[d.ID] = d.Title
	}
	return titles, nil
}

// EnsureIndexes creates the indexes the admin queries rely on.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
