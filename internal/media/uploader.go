// Package media delegates story uploads to an external hosting provider.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/hamza-bely/4hybd/internal/config"
)

// UploadResult describes a hosted media asset.
type UploadResult struct {
	URL       string
	MediaType string
}

// Uploader pushes media bytes to the hosting provider and returns the
// public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error)
}

// HTTPUploader posts unsigned multipart uploads to a Cloudinary-style
// endpoint. The provider auto-detects image vs video and reports it back.
type HTTPUploader struct {
	uploadURL string
	preset    string
	client    *http.Client
}

// NewHTTPUploader builds an uploader from config.
func NewHTTPUploader(cfg config.MediaConfig) *HTTPUploader {
	return &HTTPUploader{
		uploadURL: cfg.UploadURL,
		preset:    cfg.UploadPreset,
		client:    &http.Client{Timeout: cfg.RequestTimeout()},
	}
}

type uploadResponse struct {
	SecureURL    string `json:"secure_url"`
	ResourceType string `json:"resource_type"`
}

// Upload sends the file under a generated public id and returns the hosted
// URL and detected media type.
func (u *HTTPUploader) Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	if u.uploadURL == "" {
		return nil, fmt.Errorf("media upload url not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.WriteField("public_id", "story_"+uuid.NewString()); err != nil {
		return nil, err
	}
	if u.preset != "" {
		if err := writer.WriteField("upload_preset", u.preset); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("media upload failed: status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	if parsed.SecureURL == "" {
		return nil, fmt.Errorf("media upload failed: empty url in response")
	}

	return &UploadResult{URL: parsed.SecureURL, MediaType: parsed.ResourceType}, nil
}
