package upload

// UploadRequest describes the file field of a multipart upload. A
// request without a file fails with BadRequest before anything is
// recorded.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
}

// HasFile reports whether a file field was present in the payload.
func (r UploadRequest) HasFile() bool {
	return r.FileName != ""
}

// ListFilesRequest carries pagination for the file manager.
type ListFilesRequest struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

func (r *ListFilesRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

// ListFilesResult is the paginated file list payload.
type ListFilesResult struct {
	Files []UploadedFile `json:"files"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// DeleteSummary reports a file delete, echoing the removed record.
type DeleteSummary struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	DeletedFile UploadedFile `json:"deletedFile"`
}
