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

	"github.com/kosaboard/board-api/internal/core/domain"
)

const collectionMembers = "members"

type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{coll: db.Collection(collectionMembers)}
}

type mongoMember struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Name         string             `bson:"name"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (mu mongoMember) toDomain() *domain.Member {
	return &domain.Member{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		Name:         mu.Name,
		Role:         domain.Role(mu.Role),
		CreatedAt:    mu.CreatedAt.UTC(),
	}
}

// Create inserts a new member document. The unique index on username turns a
// racing duplicate insert into domain.ErrUsernameTaken.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMember{
		ID:           primitive.NewObjectID(),
		Username:     member.Username,
		PasswordHash: member.PasswordHash,
		Name:         member.Name,
		Role:         string(member.Role),
		CreatedAt:    member.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *MemberRepository) FindByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An unparseable id cannot reference any member.
		return nil, domain.ErrMemberNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MemberRepository) findOne(ctx context.Context, filter bson.M) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoMember
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return mu.toDomain(), nil
}

// UpdateProfile sets name and/or password hash for the given username.
// Empty arguments leave the corresponding field untouched.
func (r *MemberRepository) UpdateProfile(ctx context.Context, username, name, passwordHash string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if passwordHash != "" {
		set["password_hash"] = passwordHash
	}
	if len(set) == 0 {
		return r.FindByUsername(ctx, username)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoMember
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"username": username}, bson.M{"$set": set}, opts).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes creates the unique username index that backs the
// registration uniqueness invariant.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
