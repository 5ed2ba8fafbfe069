// internal/pkg/imghost/client.go
package imghost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
)

// Client talks to an imgbb-style image hosting API: one binary upload in,
// one publicly reachable URL out.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates an image host client. The HTTP client carries an
// explicit timeout so a dead host fails the upload instead of hanging.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.External.ImageHost.Endpoint,
		apiKey:   cfg.External.ImageHost.APIKey,
		client: &http.Client{
			Timeout: cfg.External.ImageHost.Timeout,
		},
	}
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload sends a single image and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	body, contentType, err := c.buildForm(filename, content)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image upload failed with status %d", resp.StatusCode)
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if decoded.Data.URL == "" {
		return "", fmt.Errorf("upload response missing image URL")
	}

	return decoded.Data.URL, nil
}

// UploadBatch uploads files sequentially and collects URLs in input order.
// The first failure aborts the batch; there is no partial-success result.
func (c *Client) UploadBatch(ctx context.Context, files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := c.Upload(ctx, f.Name, f.Content)
		if err != nil {
			return nil, fmt.Errorf("upload of %q failed: %w", f.Name, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// File is one upload unit.
type File struct {
	Name    string
	Content io.Reader
}

func (c *Client) buildForm(filename string, content io.Reader) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("key", c.apiKey); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	return pr, writer.FormDataContentType(), nil
}
