package redis

import (
	"context"
	"encoding/json"
	"fmt"

	docstorePort "snapline/internal/ports/docstore"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
)

// indexedFields lists, per collection, the fields that can be used in
// equality queries. A SET per (collection, field, value) holds the matching
// document ids and is maintained on every write and delete.
var indexedFields = map[string][]string{
	"users":    {"username"},
	"posts":    {"username"},
	"comments": {"postId"},
	"likes":    {"postId"},
}

type DocStoreRedis struct {
	Client *redis.Client
}

func NewDocStoreRedis(client *redis.Client) *DocStoreRedis {
	return &DocStoreRedis{Client: client}
}

func docKey(collection, id string) string {
	return collection + "/" + id
}

func indexKey(collection, field, value string) string {
	return collection + ":" + field + ":" + value
}

func (s *DocStoreRedis) Read(ctx context.Context, collection, id string) (*docstorePort.Document, error) {
	data, err := s.Client.Get(ctx, docKey(collection, id)).Bytes()
	if err == redis.Nil {
		return nil, docstorePort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &docstorePort.Document{ID: id, Data: data}, nil
}

func (s *DocStoreRedis) Query(ctx context.Context, collection, field, value string) ([]*docstorePort.Document, error) {
	ids, err := s.Client.SMembers(ctx, indexKey(collection, field, value)).Result()
	if err != nil {
		return nil, err
	}

	docs := make([]*docstorePort.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Read(ctx, collection, id)
		if err == docstorePort.ErrNotFound {
			continue // stale index entry
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *DocStoreRedis) Write(ctx context.Context, collection, id string, data []byte) (string, error) {
	if id == "" {
		// UUIDv7 keeps identifiers lexicographically ordered by creation time.
		id = uuid.Must(uuid.NewV7()).String()
	} else {
		// Overwrite: drop index memberships of the previous document version.
		if old, err := s.Read(ctx, collection, id); err == nil {
			if err := s.unindex(ctx, collection, id, old.Data); err != nil {
				return "", err
			}
		}
	}

	if err := s.Client.Set(ctx, docKey(collection, id), data, 0).Err(); err != nil {
		return "", err
	}

	for field, value := range fieldValues(collection, data) {
		if err := s.Client.SAdd(ctx, indexKey(collection, field, value), id).Err(); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (s *DocStoreRedis) Delete(ctx context.Context, collection, id string) error {
	doc, err := s.Read(ctx, collection, id)
	if err == docstorePort.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.unindex(ctx, collection, id, doc.Data); err != nil {
		return err
	}
	return s.Client.Del(ctx, docKey(collection, id)).Err()
}

func (s *DocStoreRedis) unindex(ctx context.Context, collection, id string, data []byte) error {
	for field, value := range fieldValues(collection, data) {
		if err := s.Client.SRem(ctx, indexKey(collection, field, value), id).Err(); err != nil {
			return fmt.Errorf("docstore: removing %s from index %s/%s: %w", id, collection, field, err)
		}
	}
	return nil
}

// fieldValues extracts the indexed string fields present in a document.
func fieldValues(collection string, data []byte) map[string]string {
	fields := indexedFields[collection]
	if len(fields) == 0 {
		return nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	values := make(map[string]string)
	for _, field := range fields {
		if v, ok := doc[field].(string); ok && v != "" {
			values[field] = v
		}
	}
	return values
}
