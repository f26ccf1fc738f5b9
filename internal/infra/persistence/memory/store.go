// Package memory contains an in-process implementation of the persistence layer
// on top of gocloud.dev/docstore/memdocstore. It backs local development and tests.
package memory

import (
	"context"
	"io"
	"maps"
	"sync"
	"time"

	"displaygram/internal/domain/constants"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

var errDocumentNotFound = errors.New("document not found")

//nolint:gochecknoglobals
var collectionNames = []string{
	constants.CollectionPosts,
	constants.CollectionCollections,
	constants.CollectionCompanies,
	constants.CollectionCompanyNames,
	constants.CollectionAccessRequests,
	constants.CollectionPendingUsers,
	constants.CollectionUsers,
	constants.CollectionAPIKeys,
	constants.CollectionMail,
}

// Store owns one memdocstore collection per document collection.
type Store struct {
	collections map[string]*docstore.Collection

	// txMu serialises transactions; see transactionManager.
	txMu sync.Mutex
	now  func() time.Time
}

// NewStore opens every collection keyed by the "id" field.
func NewStore() (*Store, error) {
	s := &Store{
		collections: make(map[string]*docstore.Collection, len(collectionNames)),
		now:         time.Now,
	}
	for _, name := range collectionNames {
		coll, err := memdocstore.OpenCollection(model.FieldID, nil)
		if err != nil {
			_ = s.Close()

			return nil, errors.Wrapf(err, "open %s collection", name)
		}
		s.collections[name] = coll
	}

	return s, nil
}

// Close closes every collection.
func (s *Store) Close() error {
	var errs []error
	for name, coll := range s.collections {
		if err := coll.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close %s collection", name))
		}
	}

	return errors.Join(errs...)
}

// Put writes a raw document, replacing any existing one. Documents owned by
// other services, such as posts and collections, are seeded through it.
func (s *Store) Put(ctx context.Context, collection, id string, data map[string]any) error {
	doc := maps.Clone(data)
	if doc == nil {
		doc = map[string]any{}
	}
	doc[model.FieldID] = id

	return errors.WithStack(s.collection(collection).Put(ctx, doc))
}

// Get reads a raw document.
func (s *Store) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	doc := map[string]any{model.FieldID: id}
	if err := s.collection(collection).Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errDocumentNotFound
		}

		return nil, errors.WithStack(err)
	}

	return doc, nil
}

// Count returns the number of documents in a collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	docs, err := s.query(ctx, collection, 0)

	return len(docs), err
}

func (s *Store) collection(name string) *docstore.Collection {
	coll, ok := s.collections[name]
	if !ok {
		panic("memory: unknown collection " + name)
	}

	return coll
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// equals is a single equality filter.
type equals struct {
	field string
	value any
}

// query returns the documents matching every filter. A limit of zero means no limit.
func (s *Store) query(ctx context.Context, collection string, limit int, filters ...equals) ([]map[string]any, error) {
	q := s.collection(collection).Query()
	for _, f := range filters {
		q = q.Where(docstore.FieldPath(f.field), "=", f.value)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Get(ctx)
	defer iter.Stop()

	var docs []map[string]any
	for {
		doc := map[string]any{}
		err := iter.Next(ctx, doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func docID(doc map[string]any) string {
	id, _ := doc[model.FieldID].(string)

	return id
}

func toMods(fields map[string]any) docstore.Mods {
	mods := make(docstore.Mods, len(fields))
	for k, v := range fields {
		mods[docstore.FieldPath(k)] = v
	}

	return mods
}
