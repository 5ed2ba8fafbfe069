package upload

import (
	"mime/multipart"
	"testing"

	"github.com/allithy/storefront-backend/internal/config"
)

func testService() *Service {
	return NewService(nil, &config.Config{
		Upload: config.UploadConfig{
			MaxSize:           1024,
			MaxImages:         4,
			AllowedExtensions: []string{"jpg", "jpeg", "png", "webp"},
		},
	})
}

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestValidate(t *testing.T) {
	svc := testService()

	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr bool
	}{
		{"ok jpg", header("photo.jpg", 100), false},
		{"ok uppercase ext", header("photo.JPG", 100), false},
		{"ok webp", header("photo.webp", 1024), false},
		{"too large", header("photo.jpg", 2048), true},
		{"bad extension", header("report.pdf", 100), true},
		{"no extension", header("photo", 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.validate(tt.header)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%q) error = %v, wantErr %v", tt.header.Filename, err, tt.wantErr)
			}
		})
	}
}

func TestUploadImagesCountLimits(t *testing.T) {
	svc := testService()

	if _, err := svc.UploadImages(nil, nil); err == nil {
		t.Error("empty batch accepted")
	}

	five := []*multipart.FileHeader{
		header("1.jpg", 1), header("2.jpg", 1), header("3.jpg", 1),
		header("4.jpg", 1), header("5.jpg", 1),
	}
	if _, err := svc.UploadImages(nil, five); err == nil {
		t.Error("five images accepted, limit is four")
	}
}

func TestUploadImagesRejectsBeforeNetwork(t *testing.T) {
	// host is nil: reaching the network would panic, so a validation
	// error proves the check happens first.
	svc := testService()
	if _, err := svc.UploadImages(nil, []*multipart.FileHeader{header("report.pdf", 10)}); err == nil {
		t.Error("invalid extension accepted")
	}
}
