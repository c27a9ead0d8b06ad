package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"registration/domain"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberListenAddress() string {
	return fmt.Sprintf("%s:%s", GetFiberHttpHost(), GetFiberHttpPort())
}

func GetFiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          GetAppName(),
		AppName:               GetAppName(),
		ReadTimeout:           time.Second * 60,
		CaseSensitive:         true,
		ErrorHandler:          errorHandler,
	}
}

// errorHandler answers unrouted paths and panics with the response envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		GetLogrusInstance().WithError(err).WithField("path", c.Path()).Error("unhandled request error")
	}

	return c.Status(code).JSON(domain.APIResponse{
		Success: false,
		Message: message,
		Errors:  []string{message},
	})
}

func GetAppName() string {
	v := os.Getenv("APP_NAME")
	if v == "" {
		return "REGISTRATION"
	}

	return v
}

func GetFiberHttpHost() string {
	env := os.Getenv("HTTP_HOST")
	if env != "" {
		return env
	}
	return "0.0.0.0"
}

func GetFiberHttpPort() string {
	env := os.Getenv("HTTP_PORT")
	if env != "" {
		return env
	}
	return "8000"
}

func GetCorsAllowOrigins() string {
	return getEnv("CORS_ALLOW_ORIGINS", "*")
}
