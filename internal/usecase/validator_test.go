package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
)

const testMaxFileSize = 5 * 1024 * 1024

func TestValidateDocumentExtensions(t *testing.T) {
	payload := strings.Repeat("A", 100)

	for _, name := range []string{"cv.pdf", "cv.PDF", "photo.jpg", "photo.jpeg", "scan.png", "cv.doc", "cv.docx", "notes.txt", "dir.v2/cv.pdf"} {
		if err := validateDocument(name, payload, testMaxFileSize); err != nil {
			t.Fatalf("validateDocument(%q) = %v, want nil", name, err)
		}
	}

	for _, name := range []string{"cv.exe", "cv", "archive.zip", "cv.pdf.sh", "trailingdot."} {
		err := validateDocument(name, payload, testMaxFileSize)
		var appErr *apperror.Error
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindValidation {
			t.Fatalf("validateDocument(%q) = %v, want validation error", name, err)
		}
	}
}

func TestValidateDocumentSizeCeiling(t *testing.T) {
	// 5 MiB decoded is exactly at the limit.
	atLimit := strings.Repeat("A", testMaxFileSize*4/3)
	if err := validateDocument("cv.pdf", atLimit, testMaxFileSize); err != nil {
		t.Fatalf("payload at limit rejected: %v", err)
	}

	oversized := strings.Repeat("A", testMaxFileSize*4/3+8)
	err := validateDocument("cv.pdf", oversized, testMaxFileSize)
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindValidation {
		t.Fatalf("oversized payload: got %v, want validation error", err)
	}
}

func TestDecodedSizeIsCeiling(t *testing.T) {
	cases := []struct {
		encoded int
		want    int64
	}{
		{0, 0},
		{1, 1},
		{4, 3},
		{5, 4},
		{8, 6},
	}
	for _, tc := range cases {
		if got := decodedSize(tc.encoded); got != tc.want {
			t.Fatalf("decodedSize(%d) = %d, want %d", tc.encoded, got, tc.want)
		}
	}
}

func TestMimeTypeFor(t *testing.T) {
	cases := map[string]string{
		"cv.pdf":      "application/pdf",
		"photo.JPG":   "image/jpeg",
		"cv.docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"unknown.bin": "application/octet-stream",
	}
	for name, want := range cases {
		if got := mimeTypeFor(name); got != want {
			t.Fatalf("mimeTypeFor(%q) = %q, want %q", name, got, want)
		}
	}
}
