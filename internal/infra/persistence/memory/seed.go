package memory

import (
	"context"

	"displaygram/internal/errors"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SeedFromFile loads documents from a YAML file shaped as
// collection -> document id -> fields, and returns how many were written.
func (s *Store) SeedFromFile(ctx context.Context, path string) (int, error) {
	k := koanf.New("/")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return 0, errors.Wrapf(err, "read seed file %s", path)
	}

	return s.Seed(ctx, k.Raw())
}

// Seed writes documents shaped as collection -> document id -> fields.
func (s *Store) Seed(ctx context.Context, data map[string]any) (int, error) {
	count := 0
	for collection, rawDocs := range data {
		if _, ok := s.collections[collection]; !ok {
			return count, errors.Errorf("seed: unknown collection %q", collection)
		}

		docs, ok := rawDocs.(map[string]any)
		if !ok {
			return count, errors.Errorf("seed: collection %q must map ids to documents", collection)
		}

		for id, rawDoc := range docs {
			fields, ok := rawDoc.(map[string]any)
			if !ok {
				return count, errors.Errorf("seed: document %s/%s must be a map", collection, id)
			}
			if err := s.Put(ctx, collection, id, fields); err != nil {
				return count, err
			}
			count++
		}
	}

	return count, nil
}
