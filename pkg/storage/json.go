package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// ReadJSON downloads the blob at key and decodes it into v.
// Returns ErrNotFound when no blob exists at key.
func ReadJSON(ctx context.Context, sys System, key string, v any) error {
	rc, err := sys.Download(ctx, key)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// WriteJSON marshals v and uploads it to key, replacing any existing
// blob wholesale. There is no partial update; concurrent writers to the
// same key race on last-write-wins.
func WriteJSON(ctx context.Context, sys System, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return sys.Upload(ctx, key, bytes.NewReader(data), "application/json")
}
