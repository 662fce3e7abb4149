package redis

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
)

type ImageStoreRedis struct {
	Client *redis.Client
}

func NewImageStoreRedis(client *redis.Client) *ImageStoreRedis {
	return &ImageStoreRedis{Client: client}
}

// Upload stores the image blob and returns its endpoint reference. Callers
// treat the endpoint as opaque.
func (s *ImageStoreRedis) Upload(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errors.New("imagestore: empty image")
	}

	endpoint := "images/" + uuid.Must(uuid.NewV7()).String()
	if err := s.Client.Set(ctx, endpoint, image, 0).Err(); err != nil {
		return "", err
	}
	return endpoint, nil
}
