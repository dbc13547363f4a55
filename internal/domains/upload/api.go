package upload

import "context"

// API is the upload resource seam.
type API interface {
	Upload(ctx context.Context, req UploadRequest) (*UploadedFile, error)
	List(ctx context.Context, req ListFilesRequest) (*ListFilesResult, error)
	Delete(ctx context.Context, id string) (*DeleteSummary, error)
}
