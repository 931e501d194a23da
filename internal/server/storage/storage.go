// Package storage abstracts the object store that holds uploaded audio
// blobs.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Storage is a content-addressed blob store. Keys are opaque paths chosen
// by the caller.
type Storage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// RandomAudioKey returns a fresh storage key for an uploaded audio blob,
// partitioned by upload date.
func RandomAudioKey() string {
	d := time.Now()
	return fmt.Sprintf("audios/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}
