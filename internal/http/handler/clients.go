package handler

import (
	"github.com/gofiber/fiber/v2"

	"docrisk/internal/service"
)

type createClientRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// ListClients returns clients with their live risk summary.
func ListClients(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := paging(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateClient registers a corporate client.
func CreateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createClientRequest
		if ok, err := bind(c, &req); !ok {
			return err
		}
		client, err := svc.Create(c.UserContext(), req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(client)
	}
}

// GetClientReport returns the client with its per-requirement risk report.
func GetClientReport(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		report, err := svc.ClientReport(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(report)
	}
}

// DeleteClient removes a client with its checklist, uploads and stored files.
func DeleteClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
