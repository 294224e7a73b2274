package usecase

import (
	"strings"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
)

// DocumentKind tags which instruction template and analysis prompt a document
// gets.
type DocumentKind string

const (
	KindCV          DocumentKind = "cv"
	KindCoverLetter DocumentKind = "coverLetter"
)

var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"doc":  {},
	"docx": {},
	"txt":  {},
}

var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"txt":  "text/plain",
}

// validateDocument enforces the extension allow-list and the size ceiling.
// Size is computed from the encoded length, so an oversized payload is
// rejected before it is ever decoded or sent anywhere.
func validateDocument(fileName, encoded string, maxSizeBytes int64) error {
	ext := fileExtension(fileName)
	if _, ok := allowedExtensions[ext]; !ok {
		return apperror.Validation("unsupported file type for %s: allowed types are pdf, jpg, jpeg, png, doc, docx, txt", fileName)
	}

	if decodedSize(len(encoded)) > maxSizeBytes {
		return apperror.Validation("file %s is too large: maximum size is %d bytes", fileName, maxSizeBytes)
	}
	return nil
}

// fileExtension returns the lowercase substring after the last dot, or empty
// when the name has no dot.
func fileExtension(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx == -1 || idx == len(fileName)-1 {
		return ""
	}
	return strings.ToLower(fileName[idx+1:])
}

// decodedSize approximates the decoded byte count of a base64 payload:
// ceil(encoded length x 3 / 4).
func decodedSize(encodedLen int) int64 {
	return (int64(encodedLen)*3 + 3) / 4
}

// mimeTypeFor maps a file name to the MIME type sent with the binary part.
func mimeTypeFor(fileName string) string {
	if mime, ok := mimeTypes[fileExtension(fileName)]; ok {
		return mime
	}
	return "application/octet-stream"
}
