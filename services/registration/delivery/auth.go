package delivery

import (
	"strings"

	"registration/config"
	"registration/domain"

	"github.com/gofiber/fiber/v2"
)

type aHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandler(app fiber.Router, useCase domain.AuthUseCase) {
	handler := &aHandler{
		uc: useCase,
	}
	group := app.Group("/api/auth")
	group.Post("/login", handler.Login)
	group.Post("/register", handler.Register)
}

func (h *aHandler) Login(c *fiber.Ctx) error {
	var payload domain.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Login", "Invalid request body", err.Error())
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	if errs := validate(&payload); errs != nil {
		return badRequest(c, "Login", "Validation failed", errs...)
	}

	data, err := h.uc.Login(c.UserContext(), &payload)
	if err != nil {
		return fail(c, "Login", "Login failed", err)
	}

	config.PrintLogInfo(&payload.Email, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(domain.APIResponse{
		Success: true,
		Message: "Login successful",
		Data:    data,
	})
}

func (h *aHandler) Register(c *fiber.Ctx) error {
	var payload domain.CreatePersonRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Register", "Invalid request body", err.Error())
	}

	payload.Normalize()
	if errs := validate(&payload); errs != nil {
		return badRequest(c, "Register", "Validation failed", errs...)
	}

	person, err := h.uc.Register(c.UserContext(), &payload)
	if err != nil {
		return fail(c, "Register", "Registration failed", err)
	}
	return ok(c, fiber.StatusCreated, "Register", "Registration successful", person.ToDetails())
}
