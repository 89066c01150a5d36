package service

import "context"

// FileStorage stores uploaded images and returns their public URL.
// The upload endpoint accepts base64 payloads with a target folder and
// filename; the blob backend decides where the bytes actually live.
type FileStorage interface {
	// Save writes the decoded payload under folder/filename and returns the
	// URL the stored object is served from.
	Save(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
}
