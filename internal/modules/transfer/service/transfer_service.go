package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/modules/transfer/domain"
	transferout "focusdesk/internal/modules/transfer/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

type TransferService struct {
	documents transferout.DocumentAccess
	files     transferout.ExternalFiles
	log       hclog.Logger
}

func NewTransferService(documents transferout.DocumentAccess, files transferout.ExternalFiles, log hclog.Logger) *TransferService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &TransferService{documents: documents, files: files, log: log}
}

// Export copies the stored document verbatim to dest. Nothing is created at
// dest when the document has never been written.
func (s *TransferService) Export(ctx context.Context, req domain.Request) (int, error) {
	req.Direction = domain.Export
	if err := req.Validate(); err != nil {
		return 0, err
	}
	src, exists, err := s.documents.Locate(ctx, req.Type)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: no %s data to export", apperrors.ErrNotFound, req.Type)
	}
	n, err := s.files.CopyFile(ctx, src, req.Path)
	if err != nil {
		return 0, err
	}
	s.log.Info("exported document", "type", req.Type, "path", req.Path, "bytes", n)
	return n, nil
}

// Import replaces the stored document with the raw text at src once it
// parses as JSON. The store is left untouched on any failure.
func (s *TransferService) Import(ctx context.Context, req domain.Request) (int, error) {
	req.Direction = domain.Import
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if _, _, err := s.documents.Locate(ctx, req.Type); err != nil {
		return 0, err
	}
	raw, err := s.files.ReadFile(ctx, req.Path)
	if err != nil {
		return 0, err
	}
	if err := domain.ValidatePayload(raw, req.Path); err != nil {
		return 0, err
	}
	if err := s.documents.Write(ctx, req.Type, string(raw)); err != nil {
		return 0, err
	}
	s.log.Info("imported document", "type", req.Type, "path", req.Path, "bytes", len(raw))
	return len(raw), nil
}
