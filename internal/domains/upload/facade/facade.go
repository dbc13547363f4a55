// Package facade adapts the simulated backend client to the upload
// API.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ upload.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) Upload(ctx context.Context, req upload.UploadRequest) (*upload.UploadedFile, error) {
	return f.client.UploadFile(ctx, req)
}

func (f *Facade) List(ctx context.Context, req upload.ListFilesRequest) (*upload.ListFilesResult, error) {
	return f.client.ListUploadedFiles(ctx, req)
}

func (f *Facade) Delete(ctx context.Context, id string) (*upload.DeleteSummary, error) {
	return f.client.DeleteUploadedFile(ctx, id)
}
