package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kosaboard/board-api/internal/core/domain"
)

const collectionPosts = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(collectionPosts)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// mongoPostWithAuthor is the shape produced by the $lookup pipeline: the post
// document with its author document unwound alongside.
type mongoPostWithAuthor struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	Author    mongoMember        `bson:"author"`
}

func (mp mongoPostWithAuthor) toDomain() *domain.PostWithAuthor {
	return &domain.PostWithAuthor{
		Post: domain.Post{
			ID:        mp.ID.Hex(),
			Title:     mp.Title,
			Content:   mp.Content,
			AuthorID:  mp.Author.ID.Hex(),
			CreatedAt: mp.CreatedAt.UTC(),
		},
		Author: *mp.Author.toDomain(),
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	authorID, err := primitive.ObjectIDFromHex(post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("insert post: bad author id: %w", err)
	}

	doc := mongoPost{
		ID:        primitive.NewObjectID(),
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  authorID,
		CreatedAt: post.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	out := *post
	out.ID = doc.ID.Hex()
	return &out, nil
}

// lookupAuthorStages joins and unwinds the author document so every read
// returns the post with its author in one round-trip.
func lookupAuthorStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionMembers},
			{Key: "localField", Value: "author_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$unwind", Value: "$author"}},
	}
}

func (r *PostRepository) FindByIDWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(
		[]bson.D{{{Key: "$match", Value: bson.M{"_id": oid}}}},
		lookupAuthorStages()...,
	)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("find post: %w", err)
		}
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPostWithAuthor
	if err := cur.Decode(&mp); err != nil {
		return nil, fmt.Errorf("find post: decode: %w", err)
	}
	return mp.toDomain(), nil
}

// ListWithAuthor returns all posts newest-first with their authors joined.
func (r *PostRepository) ListWithAuthor(ctx context.Context) ([]*domain.PostWithAuthor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(
		lookupAuthorStages(),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.PostWithAuthor
	for cur.Next(ctx) {
		var mp mongoPostWithAuthor
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("list posts: decode: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the indexes backing the feed sort and author lookup.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
