package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"dealer-analytics/internal/shared/filestorages"
)

// putJSON marshals v and writes it under key.
func putJSON(ctx context.Context, fileStorage filestorages.FileStorage, key string, v any, opts filestorages.PutOptions) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	_, err = fileStorage.Put(ctx, key, bytes.NewReader(jsonData), opts)
	return err
}

// getJSON reads key into v. Errors from the storage are returned unwrapped
// so callers can match filestorages.ErrFileNotFound.
func getJSON(ctx context.Context, fileStorage filestorages.FileStorage, key string, v any) error {
	readCloser, err := fileStorage.Get(ctx, key)
	if err != nil {
		return err
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}
