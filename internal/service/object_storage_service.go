package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/config"
)

// UploadInput describes one temp artifact. Permissions scope read/delete
// access on the stored object to the owning candidate.
type UploadInput struct {
	FileID      string
	FileName    string
	Data        []byte
	Permissions []string
}

type ObjectStorageInterface interface {
	Upload(ctx context.Context, input UploadInput) (string, error)
	Delete(ctx context.Context, fileID string) error
}

// ObjectStorageService talks to the external blob store over HTTP. Objects it
// creates are speculative audit copies and are never read back.
type ObjectStorageService struct {
	client *resty.Client
	bucket string
	logger *zap.Logger
}

func NewObjectStorageService(cfg config.StorageConfig, logger *zap.Logger) *ObjectStorageService {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetHeader("X-API-Key", cfg.APIKey)

	return &ObjectStorageService{client: client, bucket: cfg.Bucket, logger: logger}
}

type uploadRequest struct {
	FileID      string   `json:"fileId"`
	Name        string   `json:"name"`
	Data        string   `json:"data"`
	Permissions []string `json:"permissions"`
}

type uploadResponse struct {
	ID string `json:"id"`
}

func (s *ObjectStorageService) Upload(ctx context.Context, input UploadInput) (string, error) {
	var out uploadResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(uploadRequest{
			FileID:      input.FileID,
			Name:        input.FileName,
			Data:        base64.StdEncoding.EncodeToString(input.Data),
			Permissions: input.Permissions,
		}).
		SetResult(&out).
		Post(fmt.Sprintf("/buckets/%s/files", s.bucket))
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("upload file: storage returned %s", resp.Status())
	}

	id := out.ID
	if id == "" {
		id = input.FileID
	}
	s.logger.Debug("temp artifact uploaded", zap.String("file_id", id), zap.String("name", input.FileName))
	return id, nil
}

func (s *ObjectStorageService) Delete(ctx context.Context, fileID string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/buckets/%s/files/%s", s.bucket, fileID))
	if err != nil {
		return fmt.Errorf("delete file %s: %w", fileID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete file %s: storage returned %s", fileID, resp.Status())
	}
	return nil
}
