package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/modules/backup/domain"
	backupout "focusdesk/internal/modules/backup/port/out"
	"focusdesk/internal/platform/clock"
)

type BackupService struct {
	clock     clock.Clock
	documents backupout.DocumentSource
	snapshots backupout.SnapshotStore
	catalog   backupout.Catalog
	log       hclog.Logger
}

func NewBackupService(clk clock.Clock, documents backupout.DocumentSource, snapshots backupout.SnapshotStore, catalog backupout.Catalog, log hclog.Logger) *BackupService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &BackupService{clock: clk, documents: documents, snapshots: snapshots, catalog: catalog, log: log}
}

// Create copies every existing document into a fresh timestamped folder.
// A copy failure aborts the run; files copied before it are left in place.
func (s *BackupService) Create(ctx context.Context, base string) (domain.Backup, error) {
	if err := domain.ValidateBaseName(base); err != nil {
		return domain.Backup{}, err
	}
	now := s.clock.Now()
	folder, err := s.snapshots.CreateFolder(ctx, domain.FolderName(base, now))
	if err != nil {
		return domain.Backup{}, err
	}

	backup := domain.Backup{
		Name:      base,
		Stamp:     now.Format(domain.TimestampLayout),
		Folder:    folder,
		CreatedAt: now,
		Documents: []string{},
	}
	for _, name := range s.documents.Names() {
		path, exists, err := s.documents.Locate(ctx, name)
		if err != nil {
			return domain.Backup{}, err
		}
		if !exists {
			continue
		}
		if err := s.snapshots.Copy(ctx, path, folder); err != nil {
			return domain.Backup{}, err
		}
		backup.Documents = append(backup.Documents, name)
	}

	if s.catalog != nil {
		if err := s.catalog.Record(ctx, backup); err != nil {
			s.log.Warn("backup catalog record failed", "folder", folder, "error", err)
		}
	}
	s.log.Info("backup created", "folder", folder, "documents", len(backup.Documents))
	return backup, nil
}

func (s *BackupService) List(ctx context.Context) ([]domain.Backup, error) {
	if s.catalog == nil {
		return s.snapshots.Scan(ctx)
	}
	return s.catalog.List(ctx)
}

// Reindex replaces the catalog contents with what is on disk.
func (s *BackupService) Reindex(ctx context.Context) (int, error) {
	backups, err := s.snapshots.Scan(ctx)
	if err != nil {
		return 0, err
	}
	if s.catalog == nil {
		return len(backups), nil
	}
	if err := s.catalog.Reset(ctx); err != nil {
		return 0, err
	}
	for _, backup := range backups {
		if err := s.catalog.Record(ctx, backup); err != nil {
			return 0, err
		}
	}
	return len(backups), nil
}
