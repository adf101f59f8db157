package photos

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log"
)

// Provider fetches one photo from the places provider by reference.
// Satisfied by places.GoogleClient.
type Provider interface {
	Photo(ctx context.Context, ref string, maxWidth int) ([]byte, string, error)
}

// Store is the object store backing the photo cache. Satisfied by
// storage.R2Client.
type Store interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

const maxPhotoWidth = 800

// Service resolves provider photo references to public URLs, caching the
// image bytes in the object store so the provider key never reaches clients
// and each photo is fetched from the provider at most once.
type Service struct {
	provider Provider
	store    Store
}

func NewService(provider Provider, store Store) *Service {
	return &Service{
		provider: provider,
		store:    store,
	}
}

// Resolve returns a public URL for the photo behind ref, fetching and caching
// it on the first request.
func (s *Service) Resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", errors.New("empty photo reference")
	}

	key := cacheKey(ref)

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		// A failed existence check is a cache miss, not a failure.
		log.Printf("[PHOTOS] cache check failed key=%s: %v", key, err)
	}
	if err == nil && exists {
		return s.store.PublicURL(key), nil
	}

	data, contentType, err := s.provider.Photo(ctx, ref, maxPhotoWidth)
	if err != nil {
		return "", err
	}

	return s.store.Upload(ctx, key, contentType, bytes.NewReader(data))
}

// cacheKey is deterministic per reference so repeat requests hit the cache.
func cacheKey(ref string) string {
	sum := sha256.Sum256([]byte(ref))
	return "photos/" + hex.EncodeToString(sum[:])
}
