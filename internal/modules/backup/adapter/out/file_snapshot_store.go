package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"focusdesk/internal/modules/backup/domain"
	backupout "focusdesk/internal/modules/backup/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

type FileSnapshotStore struct {
	root string
}

func NewFileSnapshotStore(backupDir string) backupout.SnapshotStore {
	return &FileSnapshotStore{root: backupDir}
}

func (s *FileSnapshotStore) Root() string {
	return s.root
}

func (s *FileSnapshotStore) CreateFolder(_ context.Context, folder string) (string, error) {
	path, err := filepath.Abs(filepath.Join(s.root, folder))
	if err != nil {
		return "", fmt.Errorf("%w: resolve backup folder: %w", apperrors.ErrIO, err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("%w: create backup folder: %w", apperrors.ErrIO, err)
	}
	return path, nil
}

func (s *FileSnapshotStore) Copy(_ context.Context, src, folderPath string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", apperrors.ErrIO, filepath.Base(src), err)
	}
	defer in.Close()

	dst := filepath.Join(folderPath, filepath.Base(src))
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", apperrors.ErrIO, dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: copy %s: %w", apperrors.ErrIO, filepath.Base(src), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", apperrors.ErrIO, dst, err)
	}
	return nil
}

// Scan rebuilds backup records from the folders on disk. Entries that do not
// follow the folder naming scheme are ignored.
func (s *FileSnapshotStore) Scan(_ context.Context) ([]domain.Backup, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Backup{}, nil
		}
		return nil, fmt.Errorf("%w: read backups dir: %w", apperrors.ErrIO, err)
	}
	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve backups dir: %w", apperrors.ErrIO, err)
	}
	out := make([]domain.Backup, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		base, at, ok := domain.ParseFolderName(entry.Name())
		if !ok {
			continue
		}
		folder := filepath.Join(root, entry.Name())
		docs, err := listDocuments(folder)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Backup{
			Name:      base,
			Stamp:     at.Format(domain.TimestampLayout),
			Folder:    folder,
			CreatedAt: at,
			Documents: docs,
		})
	}
	return out, nil
}

func listDocuments(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: read backup %s: %w", apperrors.ErrIO, filepath.Base(folder), err)
	}
	docs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		docs = append(docs, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(docs)
	return docs, nil
}
