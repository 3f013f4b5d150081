package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// File represents a stored file's metadata as returned by the storage API.
type File struct {
	ID        string `json:"$id"`
	BucketID  string `json:"bucketId"`
	Name      string `json:"name"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeOriginal"`
	CreatedAt string `json:"$createdAt"`
}

// CreateFile uploads content to a storage bucket under a generated unique ID
// and returns the created file's metadata.
func (c *Client) CreateFile(ctx context.Context, bucketID, filename string, content io.Reader) (File, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("fileId", UniqueID()); err != nil {
		return File{}, fmt.Errorf("failed to write fileId field: %w", err)
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return File{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return File{}, fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return File{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	path := fmt.Sprintf("/storage/buckets/%s/files", bucketID)
	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+path, &buf)
	if err != nil {
		return File{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return File{}, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp apiError
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return File{}, errResp
		}
		return File{}, fmt.Errorf("storage returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var file File
	if err := json.Unmarshal(bodyBytes, &file); err != nil {
		return File{}, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return file, nil
}

// DeleteFile removes a file from a storage bucket.
func (c *Client) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	path := fmt.Sprintf("/storage/buckets/%s/files/%s", bucketID, fileID)
	return c.do(ctx, "DELETE", path, nil, nil)
}

// FileViewURL returns the public view URL for a stored file.
func (c *Client) FileViewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s", c.endpoint, bucketID, fileID, c.projectID)
}
