package catalog

import (
	"testing"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/i18n"
)

func TestNormalizeLegacyImageURL(t *testing.T) {
	tests := []struct {
		name       string
		images     ImageList
		imageURL   string
		wantImages []string
	}{
		{"legacy only", nil, "https://cdn.example.com/a.jpg", []string{"https://cdn.example.com/a.jpg"}},
		{"images win", ImageList{"https://cdn.example.com/b.jpg"}, "https://cdn.example.com/a.jpg", []string{"https://cdn.example.com/b.jpg"}},
		{"neither", nil, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Images: tt.images, ImageURL: tt.imageURL}
			p.Normalize()

			if p.Images == nil {
				t.Fatal("Normalize left Images nil")
			}
			if len(p.Images) != len(tt.wantImages) {
				t.Fatalf("got %d images, want %d", len(p.Images), len(tt.wantImages))
			}
			for i, url := range tt.wantImages {
				if p.Images[i] != url {
					t.Errorf("Images[%d] = %q, want %q", i, p.Images[i], url)
				}
			}
		})
	}
}

func TestPrimaryImage(t *testing.T) {
	p := Product{Images: ImageList{"first.jpg", "second.jpg"}}
	if got := p.PrimaryImage(); got != "first.jpg" {
		t.Errorf("PrimaryImage() = %q, want first.jpg", got)
	}

	empty := Product{}
	if got := empty.PrimaryImage(); got != "" {
		t.Errorf("PrimaryImage() on empty product = %q, want empty", got)
	}
}

func TestHasPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  bool
	}{
		{0, false},
		{-1, false},
		{0.01, true},
		{149.50, true},
	}

	for _, tt := range tests {
		p := Product{Price: tt.price}
		if got := p.HasPrice(); got != tt.want {
			t.Errorf("HasPrice() with price %v = %v, want %v", tt.price, got, tt.want)
		}
	}
}

func TestLocalizedFields(t *testing.T) {
	p := Product{
		TitleAR:       "ورق صور",
		TitleEN:       "Photo Paper",
		DescriptionAR: "وصف",
		DescriptionEN: "Description",
	}

	if got := p.Title(i18n.Arabic); got != "ورق صور" {
		t.Errorf("Title(ar) = %q", got)
	}
	if got := p.Title(i18n.English); got != "Photo Paper" {
		t.Errorf("Title(en) = %q", got)
	}
	if got := p.Description(i18n.Arabic); got != "وصف" {
		t.Errorf("Description(ar) = %q", got)
	}
	if got := p.Description(i18n.English); got != "Description" {
		t.Errorf("Description(en) = %q", got)
	}
}

func TestImageListRoundTrip(t *testing.T) {
	original := ImageList{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var decoded ImageList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("got %d entries, want %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("entry %d = %q, want %q", i, decoded[i], original[i])
		}
	}
}

func TestImageListScanNil(t *testing.T) {
	var l ImageList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("Scan(nil) should yield an empty, non-nil list")
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{
			MaxImages: 4,
			MaxSize:   10485760,
		},
	}
}

func TestValidateCreate(t *testing.T) {
	svc := &Service{config: testConfig()}

	valid := func() *ProductCreateRequest {
		return &ProductCreateRequest{
			TitleAR:       "ورق صور",
			TitleEN:       "Photo Paper",
			DescriptionAR: "وصف",
			DescriptionEN: "Description",
			Price:         25,
			Icon:          "🖼️",
			Images:        []string{"a.jpg"},
		}
	}

	if err := svc.validateCreate(valid()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ProductCreateRequest)
	}{
		{"missing arabic title", func(r *ProductCreateRequest) { r.TitleAR = "" }},
		{"missing english title", func(r *ProductCreateRequest) { r.TitleEN = "" }},
		{"missing arabic description", func(r *ProductCreateRequest) { r.DescriptionAR = "" }},
		{"missing english description", func(r *ProductCreateRequest) { r.DescriptionEN = "" }},
		{"negative price", func(r *ProductCreateRequest) { r.Price = -1 }},
		{"icon too long", func(r *ProductCreateRequest) { r.Icon = "abc" }},
		{"too many images", func(r *ProductCreateRequest) {
			r.Images = []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			if err := svc.validateCreate(req); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	svc := &Service{config: testConfig()}

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	if err := svc.validateUpdate(&ProductUpdateRequest{}); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
	if err := svc.validateUpdate(&ProductUpdateRequest{
		TitleAR: strPtr("ورق صور"),
		TitleEN: strPtr("Photo Paper"),
		Price:   floatPtr(25),
	}); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}

	tests := []struct {
		name string
		req  ProductUpdateRequest
	}{
		{"blanked arabic title", ProductUpdateRequest{TitleAR: strPtr("")}},
		{"blanked english title", ProductUpdateRequest{TitleEN: strPtr("")}},
		{"blanked arabic description", ProductUpdateRequest{DescriptionAR: strPtr("")}},
		{"blanked english description", ProductUpdateRequest{DescriptionEN: strPtr("")}},
		{"negative price", ProductUpdateRequest{Price: floatPtr(-1)}},
		{"icon too long", ProductUpdateRequest{Icon: strPtr("abc")}},
		{"too many images", ProductUpdateRequest{Images: &[]string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if err := svc.validateUpdate(&req); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
