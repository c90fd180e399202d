package handler

import (
	"github.com/gofiber/fiber/v2"

	"docrisk/internal/service"
)

type setRequirementRequest struct {
	DocumentTypeID string `json:"document_type_id" validate:"required,uuid"`
	// Required defaults to true when omitted.
	Required *bool `json:"required"`
}

func ListRequirements(svc service.RequirementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		reqs, err := svc.List(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": reqs})
	}
}

// SetRequirement adds a document type to the client's checklist or updates it.
func SetRequirement(svc service.RequirementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var req setRequirementRequest
		if ok, err := bind(c, &req); !ok {
			return err
		}
		required := true
		if req.Required != nil {
			required = *req.Required
		}
		r, err := svc.Set(c.UserContext(), id, req.DocumentTypeID, required)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

func DeleteRequirement(svc service.RequirementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		reqID, ok := pathID(c, "requirementId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Remove(c.UserContext(), id, reqID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
