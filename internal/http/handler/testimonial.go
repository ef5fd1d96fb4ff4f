package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealerapi/internal/model"
	"dealerapi/internal/service"
)

// ListTestimonials returns a page of testimonials. Query params: limit,
// offset, active.
func ListTestimonials(svc service.TestimonialService) fiber.Handler {
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

// CreateTestimonial creates a testimonial from a JSON body.
func CreateTestimonial(svc service.TestimonialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tm model.Testimonial
		if err := c.BodyParser(&tm); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		stored, err := svc.Create(c.UserContext(), &tm)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetTestimonial returns a testimonial by ID.
func GetTestimonial(svc service.TestimonialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		tm, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(tm)
	}
}

// UpdateTestimonial overwrites a testimonial's mutable fields.
func UpdateTestimonial(svc service.TestimonialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var tm model.Testimonial
		if err := c.BodyParser(&tm); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		tm.ID = id
		stored, err := svc.Update(c.UserContext(), &tm)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteTestimonial removes a testimonial by ID.
func DeleteTestimonial(svc service.TestimonialService) fiber.Handler {
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
