package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/config"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/domain/fiber/handler"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/logger"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/repository"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/service"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		zl.Fatal("database init failed", zap.Error(err))
	}

	candidateRepo := repository.NewCandidateRepository(db)
	jobRepo := repository.NewJobRepository(db)
	employerRepo := repository.NewEmployerRepository(db)

	ctx := context.Background()
	gemini, err := service.NewGeminiService(ctx, cfg.Gemini, zl)
	if err != nil {
		zl.Fatal("gemini init failed", zap.Error(err))
	}
	storage := service.NewObjectStorageService(cfg.Storage, zl)

	uc := usecase.NewAnalysisUsecase(candidateRepo, jobRepo, employerRepo, gemini, storage, cfg.Analysis, zl)
	analyzeHandler := handler.NewAnalyzeHandler(uc)

	app := fiber.New(fiber.Config{
		AppName: "job-document-analysis",
		// Oversized documents must reach the validator so they fail with a
		// 400, not a transport-level 413. Two base64-encoded documents well
		// above the per-file ceiling still fit under this limit.
		BodyLimit: 32 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return c.Status(code).JSON(fiber.Map{
				"success":    false,
				"statusCode": code,
				"error":      message,
			})
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(healthcheck.New())

	analyzeHandler.RegisterRoutes(app)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		zl.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zl.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	zl.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := app.Listen(cfg.Server.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
