// internal/domain/upload/service.go
package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/pkg/imghost"
)

// Service validates product image uploads and delegates hosting to the
// external image API. Validation failures are caught before any network
// call.
type Service struct {
	host   *imghost.Client
	config *config.Config
}

// NewService creates a new upload service
func NewService(host *imghost.Client, cfg *config.Config) *Service {
	return &Service{
		host:   host,
		config: cfg,
	}
}

// UploadResult carries the hosted URLs in input order.
type UploadResult struct {
	URLs []string `json:"urls"`
}

// UploadImages validates and uploads 1..MaxImages files. Any single
// failure aborts the whole batch; the caller retries manually.
func (s *Service) UploadImages(ctx context.Context, headers []*multipart.FileHeader) (*UploadResult, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}
	if len(headers) > s.config.Upload.MaxImages {
		return nil, fmt.Errorf("maximum %d images allowed", s.config.Upload.MaxImages)
	}

	for _, header := range headers {
		if err := s.validate(header); err != nil {
			return nil, err
		}
	}

	files := make([]imghost.File, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %q: %w", header.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, imghost.File{Name: header.Filename, Content: f})
	}

	urls, err := s.host.UploadBatch(ctx, files)
	if err != nil {
		return nil, err
	}

	return &UploadResult{URLs: urls}, nil
}

func (s *Service) validate(header *multipart.FileHeader) error {
	if header.Size > s.config.Upload.MaxSize {
		return fmt.Errorf("file %q exceeds maximum size of %d bytes", header.Filename, s.config.Upload.MaxSize)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return fmt.Errorf("file extension %q is not allowed", ext)
}
