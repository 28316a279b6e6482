package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

func dupKeyErr(msg string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: msg}}}
}

func TestTranslateUserWriteErr_EmailIndex(t *testing.T) {
	err := translateUserWriteErr(dupKeyErr(
		`E11000 duplicate key error collection: isplate.users index: email_1 dup key: { email: "marko@isplate.rs" }`,
	))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("email index violation should map to ErrEmailTaken, got %v", err)
	}
}

func TestTranslateUserWriteErr_IDIndex(t *testing.T) {
	err := translateUserWriteErr(dupKeyErr(
		`E11000 duplicate key error collection: isplate.users index: _id_ dup key: { _id: "u1" }`,
	))
	if errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("id collision must not report the email as taken")
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("id collision should map to ErrConflict, got %v", err)
	}
}

func TestTranslateUserWriteErr_PassThrough(t *testing.T) {
	if err := translateUserWriteErr(nil); err != nil {
		t.Fatalf("nil should stay nil, got %v", err)
	}

	plain := errors.New("network down")
	if err := translateUserWriteErr(plain); !errors.Is(err, plain) {
		t.Fatalf("non-duplicate errors should pass through, got %v", err)
	}
}
