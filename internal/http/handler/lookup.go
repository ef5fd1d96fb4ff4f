package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealerapi/internal/model"
	"dealerapi/internal/service"
)

type createLookupRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// ListLookups returns all reference values of one kind (?kind=brand).
func ListLookups(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := model.LookupKind(c.Query("kind"))
		items, err := svc.ListByKind(c.UserContext(), kind)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// CreateLookup adds a reference value.
func CreateLookup(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createLookupRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		stored, err := svc.Create(c.UserContext(), model.LookupKind(req.Kind), req.Name)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// DeleteLookup removes a reference value by ID.
func DeleteLookup(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
