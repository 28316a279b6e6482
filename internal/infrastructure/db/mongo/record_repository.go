package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// resourcePtr constrains PT to a pointer to T that satisfies domain.Resource,
// so the repository can allocate fresh records when decoding.
type resourcePtr[T any] interface {
	*T
	domain.Resource
}

// RecordRepository is the Mongo-backed store shared by all lifecycle-managed
// entities: one collection per entity type, soft-delete fields inlined on the
// document. beforeWrite/afterRead are optional serialization hooks used where
// a field crosses an explicit codec boundary (payment reservations).
type RecordRepository[T any, PT resourcePtr[T]] struct {
	col         *mongo.Collection
	beforeWrite func(PT) error
	afterRead   func(PT) error
}

func newRecordRepository[T any, PT resourcePtr[T]](db *mongo.Database, collection string) *RecordRepository[T, PT] {
	return &RecordRepository[T, PT]{col: db.Collection(collection)}
}

// NewSupplierRepository returns the suppliers collection store.
func NewSupplierRepository(db *mongo.Database) *RecordRepository[domain.Supplier, *domain.Supplier] {
	return newRecordRepository[domain.Supplier](db, collSuppliers)
}

// NewHotelRepository returns the hotels collection store.
func NewHotelRepository(db *mongo.Database) *RecordRepository[domain.Hotel, *domain.Hotel] {
	return newRecordRepository[domain.Hotel](db, collHotels)
}

// NewPaymentRepository returns the payments collection store. Reservations
// round-trip through the JSON-array-string codec at this boundary: the
// document stores a single string field, the domain type a materialized list.
func NewPaymentRepository(db *mongo.Database) *RecordRepository[domain.Payment, *domain.Payment] {
	r := newRecordRepository[domain.Payment](db, collPayments)
	r.beforeWrite = func(p *domain.Payment) error {
		raw, err := domain.EncodeReservations(p.Reservations)
		if err != nil {
			return err
		}
		p.ReservationsRaw = raw
		return nil
	}
	r.afterRead = func(p *domain.Payment) error {
		reservations, err := domain.DecodeReservations(p.ReservationsRaw)
		if err != nil {
			return err
		}
		p.Reservations = reservations
		return nil
	}
	return r
}

// List returns all documents, oldest first. With includeDeleted=false only
// active records are returned; documents written before the soft-delete
// columns existed have no deleted field and count as active.
func (r *RecordRepository[T, PT]) List(ctx context.Context, includeDeleted bool) ([]PT, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !includeDeleted {
		filter["deleted"] = bson.M{"$ne": true}
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []T
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	records := make([]PT, 0, len(rows))
	for i := range rows {
		rec := PT(&rows[i])
		if r.afterRead != nil {
			if err := r.afterRead(rec); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *RecordRepository[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row T
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&row); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rec := PT(&row)
	if r.afterRead != nil {
		if err := r.afterRead(rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (r *RecordRepository[T, PT]) Insert(ctx context.Context, rec PT) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if r.beforeWrite != nil {
		if err := r.beforeWrite(rec); err != nil {
			return err
		}
	}

	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *RecordRepository[T, PT]) Replace(ctx context.Context, rec PT) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if r.beforeWrite != nil {
		if err := r.beforeWrite(rec); err != nil {
			return err
		}
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": rec.ResourceID()}, rec)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Remove deletes by id. Removing an id that no longer exists succeeds, which
// keeps concurrent hard-deletes idempotent at this layer.
func (r *RecordRepository[T, PT]) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
