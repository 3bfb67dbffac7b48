package journal

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PersistenceManager saves journals to and loads them from plain-text files.
type PersistenceManager struct {
	options *option
}

func NewPersistenceManager(opts ...Option) *PersistenceManager {
	return &PersistenceManager{options: newOption(opts...)}
}

// SaveToFile writes the text of j to path, replacing any existing file.
func (m *PersistenceManager) SaveToFile(ctx context.Context, j fmt.Stringer, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(j.String()), m.options.Perm); err != nil {
		return errors.Wrapf(err, "failed to save journal to %s", path)
	}
	m.options.Logger.Info("journal saved", zap.String("path", path))
	return nil
}

// LoadFromFile reads a journal previously written by SaveToFile.
func (m *PersistenceManager) LoadFromFile(ctx context.Context, path string) (*Journal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load journal from %s", path)
	}
	j, err := parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse journal %s", path)
	}
	m.options.Logger.Info("journal loaded", zap.String("path", path), zap.Int("entries", j.Len()))
	return j, nil
}
