package delivery

import (
	"errors"

	"registration/config"
	"registration/domain"
	"registration/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

const (
	internalErrorMessage = "internal server error"
	cpfPattern           = "^[0-9]{11}$"
)

// statusOf maps a usecase error to its HTTP status.
func statusOf(err error) int {
	switch {
	case domain.IsValidationError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateCpf), errors.Is(err, domain.ErrDuplicateEmail):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, functionName, message string, err error) error {
	status := statusOf(err)
	detail := err.Error()
	if status == fiber.StatusInternalServerError {
		message = internalErrorMessage
		detail = internalErrorMessage
		config.GetLogrusInstance().WithError(err).WithField("handler", functionName).Error("request failed")
	}

	config.PrintLogInfo(username(c), status, functionName)
	return c.Status(status).JSON(domain.APIResponse{
		Success: false,
		Message: message,
		Errors:  []string{detail},
	})
}

func badRequest(c *fiber.Ctx, functionName, message string, errs ...string) error {
	config.PrintLogInfo(username(c), fiber.StatusBadRequest, functionName)
	return c.Status(fiber.StatusBadRequest).JSON(domain.APIResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

func ok(c *fiber.Ctx, status int, functionName, message string, data any) error {
	config.PrintLogInfo(username(c), status, functionName)
	return c.Status(status).JSON(domain.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// validate runs the struct tags and flattens govalidator's error list.
func validate(payload any) []string {
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		var errs govalidator.Errors
		if errors.As(err, &errs) {
			messages := make([]string, 0, len(errs))
			for _, e := range errs.Errors() {
				messages = append(messages, e.Error())
			}
			return messages
		}
		return []string{err.Error()}
	}
	return nil
}

func username(c *fiber.Ctx) *string {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return nil
	}
	name := claims.Name
	if name == "" {
		name = claims.Subject
	}
	return &name
}
