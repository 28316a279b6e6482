package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// UserRepository extends the generic record store with the authenticator's
// lookups. Email uniqueness is enforced by a unique index; a violation on
// insert or replace surfaces as domain.ErrEmailTaken, while an id collision
// stays the same conflict every other record type reports.
type UserRepository struct {
	*RecordRepository[domain.User, *domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{RecordRepository: newRecordRepository[domain.User](db, collUsers)}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindByEmail is a case-sensitive exact match that skips soft-deleted
// accounts, so a deleted user cannot authenticate.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	filter := bson.M{"email": email, "deleted": bson.M{"$ne": true}}
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the login time without rewriting the document.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": at}})
	return err
}

// Count returns the total number of accounts, deleted included. Used by the
// bootstrap admin seed.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// Insert stores a new account. The users collection carries two unique
// indexes, so the duplicate-key error is inspected to tell an email taken
// by another account apart from a plain id collision.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, user)
	return translateUserWriteErr(err)
}

// Replace rewrites an account; an email moved onto another account's address
// trips the same unique index as Insert.
func (r *UserRepository) Replace(ctx context.Context, user *domain.User) error {
	return translateUserWriteErr(r.RecordRepository.Replace(ctx, user))
}

// translateUserWriteErr maps a duplicate-key violation to the domain error
// matching the violated index: the email index to ErrEmailTaken, anything
// else (the _id index) to the generic conflict.
func translateUserWriteErr(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if duplicateKeyOn(err, "email") {
		return domain.ErrEmailTaken
	}
	return domain.ErrConflict
}

// duplicateKeyOn reports whether the duplicate-key error names the given
// field in its violated index.
func duplicateKeyOn(err error, field string) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		if strings.Contains(e.Message, field) {
			return true
		}
	}
	return false
}
