package config

import (
	"net/http"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetOutput(os.Stdout)
		logrusInstance.SetLevel(GetLogLevel())
	})
	return logrusInstance
}

// GetLogLevel reads LOG_LEVEL, falling back to info on empty or unknown values.
func GetLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// PrintLogInfo records one handled request. A nil username is logged as Unknown.
func PrintLogInfo(username *string, statusCode int, functionName string) {
	user := "Unknown"
	if username != nil {
		user = *username
	}

	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"user":     user,
		"handler":  functionName,
		"status":   statusCode,
		"status_t": http.StatusText(statusCode),
	})

	switch {
	case statusCode >= fiber.StatusInternalServerError:
		entry.Error("request failed")
	case statusCode >= fiber.StatusBadRequest:
		entry.Warn("request rejected")
	default:
		entry.Info("request served")
	}
}
