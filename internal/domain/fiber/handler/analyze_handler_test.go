package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/config"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/dto"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/service"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/usecase"
)

type stubCandidates struct{ candidate *model.Candidate }

func (s *stubCandidates) FindByTalentID(_ context.Context, _ string) (*model.Candidate, error) {
	return s.candidate, nil
}

type stubJobs struct{ job *model.Job }

func (s *stubJobs) FindByID(_ context.Context, _ string) (*model.Job, error) {
	return s.job, nil
}

type stubEmployers struct{}

func (s *stubEmployers) FindByID(_ context.Context, _ string) (*model.Employer, error) {
	return &model.Employer{ID: "emp-1", Name: "Acme"}, nil
}

type stubGemini struct{ queue []string }

func (s *stubGemini) GenerateContent(_ context.Context, _ string, _ *service.Attachment) (string, error) {
	r := s.queue[0]
	s.queue = s.queue[1:]
	return r, nil
}

type stubStorage struct{}

func (s *stubStorage) Upload(_ context.Context, input service.UploadInput) (string, error) {
	return input.FileID, nil
}

func (s *stubStorage) Delete(_ context.Context, _ string) error { return nil }

// newTestApp mirrors the server's fiber configuration. The body limit must sit
// comfortably above the encoded size of any document the validator has to
// classify, so oversized payloads get a 400 instead of a transport 413.
func newTestApp(gemini *stubGemini) *fiber.App {
	uc := usecase.NewAnalysisUsecase(
		&stubCandidates{candidate: &model.Candidate{
			TalentID:    "talent-1",
			Name:        "Ada Example",
			CareerStage: "established",
			Skills:      []string{"Go"},
		}},
		&stubJobs{job: &model.Job{
			ID:             "job-1",
			Title:          "Backend Engineer",
			SeniorityLevel: "Senior",
			Industry:       "Fintech",
		}},
		&stubEmployers{},
		gemini,
		&stubStorage{},
		config.AnalysisConfig{MaxFileSizeBytes: 5 * 1024 * 1024, MinExtractedChars: 50},
		zap.NewNop(),
	)

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024,
	})
	NewAnalyzeHandler(uc).RegisterRoutes(app)
	return app
}

func postAnalyze(t *testing.T, app *fiber.App, req dto.AnalyzeRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(httpReq, -1)
	if err != nil {
		t.Fatalf("request failed before reaching the handler: %v", err)
	}
	return resp
}

func TestOversizedDocumentGetsValidationErrorNotTransportRejection(t *testing.T) {
	app := newTestApp(&stubGemini{})

	// An 8 MB cover letter encodes to roughly 10.7 MB of base64. It has to
	// pass through the transport and be rejected by the validator.
	resp := postAnalyze(t, app, dto.AnalyzeRequest{
		TalentID:            "talent-1",
		JobID:               "job-1",
		CoverLetterData:     strings.Repeat("A", 8*1024*1024*4/3),
		CoverLetterFileName: "letter.pdf",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var envelope struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"statusCode"`
		Error      string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Success || envelope.StatusCode != http.StatusBadRequest {
		t.Fatalf("envelope = %+v, want failure with statusCode 400", envelope)
	}
	if !strings.Contains(envelope.Error, "too large") {
		t.Fatalf("error = %q, want size-ceiling message", envelope.Error)
	}
}

func TestAnalyzeRouteHappyPath(t *testing.T) {
	extracted := "This candidate has eight years of backend development experience across fintech and logistics platforms."
	analysis := `{
		"overallMatchScore": 80,
		"skillsAlignment": 75,
		"experienceRelevance": 85,
		"credentialsFit": 70,
		"careerStageFit": 90,
		"keyStrengths": ["backend depth"],
		"skillGaps": ["cloud certifications"],
		"tailoringSuggestions": ["mention Kubernetes work"],
		"summary": "Strong match overall."
	}`
	app := newTestApp(&stubGemini{queue: []string{extracted, analysis}})

	resp := postAnalyze(t, app, dto.AnalyzeRequest{
		TalentID:   "talent-1",
		JobID:      "job-1",
		CVData:     base64.StdEncoding.EncodeToString([]byte("cv content")),
		CVFileName: "cv.pdf",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out dto.AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success || out.StatusCode != 200 {
		t.Fatalf("envelope = success %v code %d", out.Success, out.StatusCode)
	}
	if out.Analysis == nil || out.Analysis.CV == nil {
		t.Fatal("cv analysis missing from response")
	}
	if out.JobContext == nil || out.JobContext.Title != "Backend Engineer" {
		t.Fatalf("JobContext = %+v", out.JobContext)
	}
}
