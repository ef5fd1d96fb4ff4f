package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"dealerapi/internal/service"
)

// ListVehicles returns a page of vehicles. Query params: limit, offset,
// sold (true/false), brand.
func ListVehicles(svc service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil // pageParams already wrote the error
		}

		var f repository.VehicleFilter
		if soldStr := c.Query("sold"); soldStr != "" {
			sold, err := strconv.ParseBool(soldStr)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid sold filter")
			}
			f.Sold = &sold
		}
		f.Brand = c.Query("brand")

		res, err := svc.List(c.UserContext(), limit, offset, f)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateVehicle creates a vehicle from a JSON body.
func CreateVehicle(svc service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var v model.Vehicle
		if err := c.BodyParser(&v); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		stored, err := svc.Create(c.UserContext(), &v)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetVehicle returns a vehicle by ID.
func GetVehicle(svc service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(v)
	}
}

// VehicleInquiryLink returns the WhatsApp deep link for asking about a
// vehicle. Responds 404 when no contact number is configured.
func VehicleInquiryLink(svc service.VehicleService, links service.InquiryLinkBuilder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		link := links.VehicleLink(*v)
		if link == "" {
			return writeError(c, fiber.StatusNotFound, "NOT_CONFIGURED", "contact number is not configured")
		}
		return c.JSON(fiber.Map{"url": link})
	}
}

// UpdateVehicle overwrites a vehicle's mutable fields.
func UpdateVehicle(svc service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var v model.Vehicle
		if err := c.BodyParser(&v); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		v.ID = id
		stored, err := svc.Update(c.UserContext(), &v)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteVehicle removes a vehicle by ID.
func DeleteVehicle(svc service.VehicleService) fiber.Handler {
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

// pageParams parses limit/offset, writing a 400 on bad input.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool) {
	var err error
	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}
