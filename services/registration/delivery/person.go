package delivery

import (
	"context"
	"fmt"

	"registration/domain"
	"registration/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type pHandler struct {
	uc domain.PersonUseCase
}

// NewPersonHandler mounts /api/v1/person and /api/v2/person behind bearer auth.
func NewPersonHandler(app fiber.Router, useCase domain.PersonUseCase, verifier domain.TokenIssuer) {
	handler := &pHandler{
		uc: useCase,
	}

	v1 := app.Group("/api/v1/person", middleware.AuthRequired(verifier))
	v1.Get("/", handler.GetAll)
	v1.Get("/:id", handler.GetByID)
	v1.Post("/", handler.CreateV1)
	v1.Put("/:id", handler.UpdateV1)
	v1.Delete("/:id", handler.Delete)

	v2 := app.Group("/api/v2/person", middleware.AuthRequired(verifier))
	v2.Get("/", handler.GetAll)
	v2.Get("/:id", handler.GetByID)
	v2.Post("/", handler.CreateV2)
	v2.Put("/:id", handler.UpdateV2)
	v2.Delete("/:id", handler.Delete)
}

func (h *pHandler) GetAll(c *fiber.Ctx) error {
	data, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return fail(c, "GetAllPeople", "Failed to get people", err)
	}
	return ok(c, fiber.StatusOK, "GetAllPeople", "People retrieved successfully", data)
}

func (h *pHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "GetPersonByID", "Invalid person id", err.Error())
	}

	data, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "GetPersonByID", "Failed to get person", err)
	}
	return ok(c, fiber.StatusOK, "GetPersonByID", "Person retrieved successfully", data)
}

func (h *pHandler) CreateV1(c *fiber.Ctx) error {
	return h.create(c, "CreatePersonV1", h.uc.CreateV1)
}

func (h *pHandler) CreateV2(c *fiber.Ctx) error {
	return h.create(c, "CreatePersonV2", h.uc.CreateV2)
}

type createFunc func(ctx context.Context, req *domain.CreatePersonRequest) (*domain.Person, error)

func (h *pHandler) create(c *fiber.Ctx, functionName string, create createFunc) error {
	var payload domain.CreatePersonRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, functionName, "Invalid request body", err.Error())
	}

	payload.Normalize()
	if errs := validate(&payload); errs != nil {
		return badRequest(c, functionName, "Validation failed", errs...)
	}

	person, err := create(c.UserContext(), &payload)
	if err != nil {
		return fail(c, functionName, "Failed to create person", err)
	}
	return ok(c, fiber.StatusCreated, functionName, "Person created successfully", person.ToDetails())
}

func (h *pHandler) UpdateV1(c *fiber.Ctx) error {
	return h.update(c, "UpdatePersonV1", h.uc.UpdateV1)
}

func (h *pHandler) UpdateV2(c *fiber.Ctx) error {
	return h.update(c, "UpdatePersonV2", h.uc.UpdateV2)
}

type updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonRequest) (*domain.Person, error)

func (h *pHandler) update(c *fiber.Ctx, functionName string, update updateFunc) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, functionName, "Invalid person id", err.Error())
	}

	var payload domain.UpdatePersonRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, functionName, "Invalid request body", err.Error())
	}

	payload.Normalize()
	if payload.Email.Present() && payload.Email.Value != "" && !govalidator.IsEmail(payload.Email.Value) {
		return badRequest(c, functionName, "Validation failed", "invalid email format")
	}
	if payload.Cpf.Present() && payload.Cpf.Value != "" && !govalidator.Matches(payload.Cpf.Value, cpfPattern) {
		return badRequest(c, functionName, "Validation failed", "cpf must contain exactly 11 digits")
	}

	person, err := update(c.UserContext(), id, &payload)
	if err != nil {
		return fail(c, functionName, fmt.Sprintf("Failed to update person %s", id), err)
	}
	return ok(c, fiber.StatusOK, functionName, "Person updated successfully", person.ToDetails())
}

func (h *pHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "DeletePerson", "Invalid person id", err.Error())
	}

	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, "DeletePerson", "Failed to delete person", err)
	}
	return ok(c, fiber.StatusOK, "DeletePerson", "Person deleted successfully", nil)
}
