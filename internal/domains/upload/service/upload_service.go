package service

import (
	"context"
	"strconv"
	"time"

	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

// ServiceInterface is the upload business layer.
type ServiceInterface interface {
	Upload(ctx context.Context, req upload.UploadRequest) (*upload.UploadedFile, error)
	List(ctx context.Context, req upload.ListFilesRequest) (*upload.ListFilesResult, error)
	Delete(ctx context.Context, id string) (*upload.DeleteSummary, error)
}

type UploadService struct {
	api     upload.API
	querier *query.Querier
}

// NewService - constructor with DI.
func NewService(api upload.API, querier *query.Querier) ServiceInterface {
	return &UploadService{api: api, querier: querier}
}

func (s *UploadService) Upload(ctx context.Context, req upload.UploadRequest) (*upload.UploadedFile, error) {
	uploaded, err := s.api.Upload(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return uploaded, nil
}

func (s *UploadService) List(ctx context.Context, req upload.ListFilesRequest) (*upload.ListFilesResult, error) {
	req.SetDefaults()

	key := query.Key("files", "list", strconv.Itoa(req.Page), strconv.Itoa(req.Limit))
	var result upload.ListFilesResult
	_, err := s.querier.Fetch(ctx, key, listCacheTTL, &result, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *UploadService) Delete(ctx context.Context, id string) (*upload.DeleteSummary, error) {
	summary, err := s.api.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return summary, nil
}

func (s *UploadService) invalidate(ctx context.Context) {
	if err := s.querier.Invalidate(ctx, "files"); err != nil {
		logger.Warn("file cache invalidation failed", err)
	}
}
