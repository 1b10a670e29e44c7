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
	"github.com/tastebook/admin-api/internal/core/ports"
)

const collectionBlogs = "blogs"

type BlogRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{db: db, col: db.Collection(collectionBlogs)}
}

type mongoBlog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Tags      []string           `bson:"tags"`
	Author    primitive.ObjectID `bson:"author,omitempty"`
	Picture   string             `bson:"picture,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoBlog) toDomain() domain.Blog {
	b := domain.Blog{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Content:   m.Content,
		Tags:      m.Tags,
		Picture:   m.Picture,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if !m.Author.IsZero() {
		b.Author = m.Author.Hex()
	}
	return b
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	doc := mongoBlog{
		Title:     blog.Title,
		Content:   blog.Content,
		Tags:      blog.Tags,
		Picture:   blog.Picture,
		CreatedAt: blog.CreatedAt,
	}
	if blog.Author != "" {
		oid, err := primitive.ObjectIDFromHex(blog.Author)
		if err != nil {
			return nil, fmt.Errorf("insert blog: bad author id: %w", err)
		}
		doc.Author = oid
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	var m mongoBlog
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	blog := m.toDomain()
	names, err := userNames(ctx, r.db, authorIDs([]mongoBlog{m}))
	if err != nil {
		return nil, err
	}
	blog.AuthorName = names[m.Author]
	return &blog, nil
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoBlog
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	names, err := userNames(ctx, r.db, authorIDs(docs))
	if err != nil {
		return nil, err
	}

	blogs := make([]domain.Blog, len(docs))
	for i, d := range docs {
		blogs[i] = d.toDomain()
		blogs[i].AuthorName = names[d.Author]
	}
	return blogs, nil
}

// Update applies a partial edit in one atomic write and returns the
// post-mutation record. Nil fields keep their stored values.
func (r *BlogRepository) Update(ctx context.Context, id string, update ports.BlogUpdate) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Picture != nil {
		set["picture"] = *update.Picture
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoBlog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	blog := m.toDomain()
	return &blog, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogNotFound
	}

	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrBlogNotFound
		}
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the admin queries rely on.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}

func authorIDs(docs []mongoBlog) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		if !d.Author.IsZero() {
			ids = append(ids, d.Author)
		}
	}
	return ids
}
