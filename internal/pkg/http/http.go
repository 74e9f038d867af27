package http

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.elastic.co/apm/module/apmfiber"
)

func SetupHttpEngine(cfg *config.HttpServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "marketplace-service",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(apmfiber.Middleware())

	return app
}

// errorHandler catches errors that escaped a handler, such as fiber's own 404/405.
func errorHandler(ctx *fiber.Ctx, err error) error {
	logger := log_internal.Setup()
	if fe, ok := err.(*fiber.Error); ok {
		switch fe.Code {
		case fiber.StatusNotFound:
			return helpers.RespError(ctx, logger, errors.NotFound(fe.Message))
		case fiber.StatusRequestEntityTooLarge:
			return helpers.RespError(ctx, logger, errors.ValidationError(fe.Message))
		default:
			return helpers.RespError(ctx, logger, errors.BadRequest(fe.Message))
		}
	}
	return helpers.RespError(ctx, logger, err)
}

func StartHttpServer(app *fiber.App, port string) {
	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
			log.Fatalf("error start http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := app.Shutdown(); err != nil {
		log.Printf("error shutdown http server: %v", err)
	}
}
