package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealerapi/internal/model"
	"dealerapi/internal/service"
)

// ListPosters returns a page of posters ordered by priority. Query params:
// limit, offset, active (true restricts to active posters).
func ListPosters(svc service.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		activeOnly := false
		if activeStr := c.Query("active"); activeStr != "" {
			v, err := strconv.ParseBool(activeStr)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid active filter")
			}
			activeOnly = v
		}

		res, err := svc.List(c.UserContext(), limit, offset, activeOnly)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreatePoster creates a poster from a JSON body.
func CreatePoster(svc service.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.Poster
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		stored, err := svc.Create(c.UserContext(), &p)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetPoster returns a poster by ID.
func GetPoster(svc service.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdatePoster overwrites a poster's mutable fields.
func UpdatePoster(svc service.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var p model.Poster
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		p.ID = id
		stored, err := svc.Update(c.UserContext(), &p)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeletePoster removes a poster by ID.
func DeletePoster(svc service.PosterService) fiber.Handler {
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
