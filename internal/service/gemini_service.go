package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/config"
)

// Attachment is a binary document sent alongside a prompt.
type Attachment struct {
	MIMEType string
	Data     []byte
}

type GeminiServiceInterface interface {
	GenerateContent(ctx context.Context, prompt string, attachment *Attachment) (string, error)
}

type GeminiService struct {
	client *genai.Client
	cfg    config.GeminiConfig
	logger *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{client: client, cfg: cfg, logger: logger}, nil
}

// GenerateContent sends the prompt, with an optional inline binary part, and
// returns the joined textual response. Failures are terminal for the caller;
// no retry happens at this layer.
func (s *GeminiService) GenerateContent(ctx context.Context, prompt string, attachment *Attachment) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if attachment != nil {
		parts = append(parts, genai.NewPartFromBytes(attachment.Data, attachment.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.cfg.Temperature),
		MaxOutputTokens: s.cfg.MaxOutputTokens,
	}

	result, err := s.client.Models.GenerateContent(ctx, s.cfg.Model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}

	text := result.Text()
	s.logger.Debug("gemini response received",
		zap.String("model", s.cfg.Model),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("response_length", len(text)),
	)
	return text, nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
