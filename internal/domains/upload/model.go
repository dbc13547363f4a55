package upload

// UploadedFile is the metadata record for a file in the mock file
// manager. Content is never stored, only described.
type UploadedFile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}
