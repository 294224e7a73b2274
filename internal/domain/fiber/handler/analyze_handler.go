package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/dto"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/middleware"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/usecase"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/util"
)

type AnalyzeHandler struct {
	uc *usecase.AnalysisUsecase
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")
	api.Post("/analyze", middleware.RateLimiter(10, time.Minute), h.Analyze)
}

// Analyze is the terminal request handler: one candidate against one job,
// response assembled entirely from this invocation, nothing persisted.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	started := time.Now()

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, apperror.Input("invalid request body"), started)
	}

	resp, err := h.uc.Analyze(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, err, started)
	}

	return util.SuccessResponse(c, resp.StatusCode, resp)
}
