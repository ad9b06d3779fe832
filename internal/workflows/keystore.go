package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/PolarWolf314/sator/internal/configs"
	"github.com/PolarWolf314/sator/internal/keys"
	"github.com/PolarWolf314/sator/internal/magic"
)

// KeySummary describes one key file in the keys directory.
type KeySummary struct {
	ID         string
	Path       string
	Order      int
	Method     string
	Transforms int
	CreatedAt  time.Time

	// Sealed keys only expose their ID and path.
	Sealed bool

	// Err is set when the file could not be parsed.
	Err error
}

// ListKeys summarises every key file in the keys directory, oldest first.
// A missing keys directory yields an empty list.
func ListKeys(ctx context.Context) ([]KeySummary, error) {
	dir := configs.UserSatorSettings.UserKeysPath
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keys directory: %w", err)
	}

	var summaries []KeySummary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keys.FileExtension) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		summary := KeySummary{
			ID:   strings.TrimSuffix(e.Name(), keys.FileExtension),
			Path: path,
		}

		data, err := os.ReadFile(path)
		if err != nil {
			summary.Err = err
			summaries = append(summaries, summary)
			continue
		}
		if keys.IsSealed(data) {
			summary.Sealed = true
			summaries = append(summaries, summary)
			continue
		}

		key, err := keys.Unmarshal(data)
		if err != nil {
			summary.Err = err
			summaries = append(summaries, summary)
			continue
		}
		if key.ID != "" {
			summary.ID = key.ID
		}
		summary.Order = key.Order
		summary.Method = key.Method.String()
		summary.Transforms = len(key.Transformations)
		summary.CreatedAt = key.CreatedAt
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// ShowKeyResult contains a loaded key and its replayed square.
type ShowKeyResult struct {
	Key     *keys.CipherKey
	KeyPath string
	Square  *magic.Square
	Token   string
	Layout  string
}

// ShowKey loads a key and rebuilds its scrambled square.
func ShowKey(ctx context.Context, src KeySource) (*ShowKeyResult, error) {
	key, path, err := loadKey(src)
	if err != nil {
		return nil, err
	}
	sq, err := key.Square()
	if err != nil {
		return nil, err
	}
	return &ShowKeyResult{
		Key:     key,
		KeyPath: path,
		Square:  sq,
		Token:   key.Token(),
		Layout:  sq.Layout(),
	}, nil
}
