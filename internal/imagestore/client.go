package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

// Client uploads profile pictures to the external image-hosting service.
// The only contract the rest of the system relies on: given a binary buffer
// and a name, return a stable URL, or fail.
type Client struct {
	uploadURL  string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	UploadURL     string
	APIKey        string
	UploadTimeout time.Duration
}

type uploadResponse struct {
	URL string `json:"url"`
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.UploadTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		uploadURL: config.UploadURL,
		apiKey:    config.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Upload posts the image as multipart form data and returns the hosted URL.
func (c *Client) Upload(ctx context.Context, name string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("uploading image", "name", name, "size", len(data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("image host rejected upload",
			"status", resp.StatusCode,
			"body", string(respBody))
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("image host returned empty url")
	}

	c.logger.Info("image uploaded", "name", name, "url", parsed.URL)
	return parsed.URL, nil
}
