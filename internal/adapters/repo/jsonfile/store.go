package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/bnema/pool-cli/internal/ports"
	"github.com/spf13/afero"
)

const (
	recordFileMode  = 0o644
	recordDirMode   = 0o755
	tempFilePattern = ".pool-*.json.tmp"
	backupLayout    = "20060102-150405"
)

type Store struct {
	fs    afero.Fs
	path  string
	clock ports.Clock
}

var _ ports.RecordStore = (*Store)(nil)

func NewStore(fs afero.Fs, path string, clock ports.Clock) (*Store, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve record path: %w", err)
	}

	return &Store{fs: fs, path: filepath.Clean(absPath), clock: clock}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.State{}, domain.ErrRecordNotFound
		}
		return domain.State{}, fmt.Errorf("read pool record: %w", err)
	}

	var record recordSchema
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.State{}, fmt.Errorf("decode pool record %s: %w", s.path, err)
	}
	if err := record.validateVersion(); err != nil {
		return domain.State{}, err
	}

	state, err := fromSchema(record)
	if err != nil {
		return domain.State{}, fmt.Errorf("decode pool record %s: %w", s.path, err)
	}

	return state, nil
}

func (s *Store) Save(ctx context.Context, state domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(toSchema(state))
	if err != nil {
		return fmt.Errorf("encode pool record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, recordDirMode); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}

	tempFile, err := afero.TempFile(s.fs, dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp record file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = s.fs.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp record file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp record file: %w", err)
	}

	if err := s.fs.Chmod(tempName, recordFileMode); err != nil {
		return fmt.Errorf("chmod temp record file: %w", err)
	}

	if err := s.fs.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace record file: %w", err)
	}

	cleanup = false
	return nil
}

func (s *Store) Archive(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return "", fmt.Errorf("stat pool record: %w", err)
	}
	if !exists {
		return "", nil
	}

	backupPath := BackupPath(s.path, s.clock.Now())
	if err := s.fs.Rename(s.path, backupPath); err != nil {
		return "", fmt.Errorf("archive pool record: %w", err)
	}

	return backupPath, nil
}

// BackupPath names the archive of path taken at the given time.
func BackupPath(path string, at time.Time) string {
	return fmt.Sprintf("%s.old.%s", path, at.Format(backupLayout))
}
