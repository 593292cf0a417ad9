package entity

import (
	"io"
	"path"
	"strings"
)

// DefaultUploadExtension is used when the uploaded file name has no extension.
const DefaultUploadExtension = "jpg"

// AllowedImageTypes lists the content types accepted for upload.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Upload is one file received from a client.
type Upload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// Extension returns the text after the last dot of the file name,
// or DefaultUploadExtension when there is none.
func (u *Upload) Extension() string {
	base := path.Base(strings.ReplaceAll(u.FileName, "\\", "/"))
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return DefaultUploadExtension
	}

	return base[idx+1:]
}

// UploadedFile is returned after a successful upload.
type UploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// StoredFile is an uploaded file read back from blob storage.
type StoredFile struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
