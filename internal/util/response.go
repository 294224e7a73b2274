package util

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
)

type errorEnvelope struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"statusCode"`
	Error         string `json:"error"`
	ExecutionTime string `json:"executionTime,omitempty"`
}

// SuccessResponse sends a payload that already carries its own success and
// statusCode fields.
func SuccessResponse(c *fiber.Ctx, statusCode int, payload any) error {
	return c.Status(statusCode).JSON(payload)
}

// ErrorResponse maps an error through the taxonomy and renders the failure
// envelope. The message is the error text itself; collaborator errors are not
// redacted.
func ErrorResponse(c *fiber.Ctx, err error, started time.Time) error {
	code := apperror.StatusCode(err)
	return c.Status(code).JSON(errorEnvelope{
		Success:       false,
		StatusCode:    code,
		Error:         err.Error(),
		ExecutionTime: FormatExecutionTime(started),
	})
}

// FormatExecutionTime renders elapsed wall time as whole milliseconds.
func FormatExecutionTime(started time.Time) string {
	return fmt.Sprintf("%dms", time.Since(started).Milliseconds())
}
