package blob

import (
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	u := &Uploader{prefix: "vision-board"}

	tests := []struct {
		name     string
		filename string
		wantExt  string
	}{
		{"jpeg", "mandap.JPG", ".jpg"},
		{"png", "decor.png", ".png"},
		{"no extension", "photo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := u.objectKey(tt.filename)

			if !strings.HasPrefix(key, "vision-board/") {
				t.Errorf("objectKey(%q) = %q, want vision-board/ prefix", tt.filename, key)
			}
			if !strings.HasSuffix(key, tt.wantExt) {
				t.Errorf("objectKey(%q) = %q, want %q suffix", tt.filename, key, tt.wantExt)
			}
		})
	}

	if u.objectKey("a.png") == u.objectKey("a.png") {
		t.Error("objectKey returned the same key twice")
	}
}

func TestObjectURL(t *testing.T) {
	u := &Uploader{bucket: "wedding-media", region: "us-east-1"}

	got := u.objectURL("vision-board/abc.jpg")
	want := "https://wedding-media.s3.us-east-1.amazonaws.com/vision-board/abc.jpg"
	if got != want {
		t.Errorf("objectURL() = %q, want %q", got, want)
	}
}
