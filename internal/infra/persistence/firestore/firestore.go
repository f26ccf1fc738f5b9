// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"

	"displaygram/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// docs wraps a client and, inside a transaction, the transaction itself.
// Every repository routes its reads and writes through it so the same code
// runs in and out of transactions.
type docs struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (d docs) col(name string) *firestore.CollectionRef {
	return d.client.Collection(name)
}

func (d docs) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if d.tx != nil {
		return d.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (d docs) create(ctx context.Context, ref *firestore.DocumentRef, data map[string]any) error {
	if d.tx != nil {
		return d.tx.Create(ref, data)
	}
	_, err := ref.Create(ctx, data)

	return err
}

func (d docs) set(ctx context.Context, ref *firestore.DocumentRef, data map[string]any, opts ...firestore.SetOption) error {
	if d.tx != nil {
		return d.tx.Set(ref, data, opts...)
	}
	_, err := ref.Set(ctx, data, opts...)

	return err
}

func (d docs) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if d.tx != nil {
		return d.tx.Update(ref, updates)
	}
	_, err := ref.Update(ctx, updates)

	return err
}

// all runs q and returns every snapshot.
func (d docs) all(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	var it *firestore.DocumentIterator
	if d.tx != nil {
		it = d.tx.Documents(q)
	} else {
		it = q.Documents(ctx)
	}
	defer it.Stop()

	var snaps []*firestore.DocumentSnapshot
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		snaps = append(snaps, snap)
	}

	return snaps, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
