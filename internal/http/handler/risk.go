package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"docrisk/internal/model"
	"docrisk/internal/service"
)

// defaultCalendarDays is the horizon of /calendar when "to" is omitted.
const defaultCalendarDays = 60

func Dashboard(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Dashboard(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// Calendar lists expiries between ?from and ?to (YYYY-MM-DD, inclusive).
// from defaults to today and to to 60 days after from.
func Calendar(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := parseDate(c.Query("from"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "from must be YYYY-MM-DD")
		}
		to, err := parseDate(c.Query("to"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "to must be YYYY-MM-DD")
		}
		if from == nil {
			today := svc.Today()
			from = &today
		}
		if to == nil {
			end := from.AddDate(0, 0, defaultCalendarDays)
			to = &end
		}
		cal, err := svc.Calendar(c.UserContext(), *from, *to)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cal)
	}
}

type evaluateRequest struct {
	Requirements []evaluateRequirement `json:"requirements" validate:"dive"`
	Uploads      []evaluateUpload      `json:"uploads" validate:"dive"`
}

type evaluateRequirement struct {
	ID             string `json:"id"`
	DocumentTypeID string `json:"document_type_id"`
	DocumentName   string `json:"document_name" validate:"max=200"`
	// Required defaults to true when omitted.
	Required *bool `json:"required"`
}

type evaluateUpload struct {
	ID             string    `json:"id"`
	DocumentTypeID string    `json:"document_type_id" validate:"required"`
	Filename       string    `json:"filename"`
	UploadedAt     time.Time `json:"uploaded_at"`
	ExpiresAt      string    `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
}

// EvaluateRisk runs the engine on the posted checklist and uploads. Nothing is read or stored.
// A requirement with an empty document_type_id is treated as not configured.
func EvaluateRisk(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req evaluateRequest
		if ok, err := bind(c, &req); !ok {
			return err
		}

		reqs := make([]model.Requirement, len(req.Requirements))
		for i, r := range req.Requirements {
			required := true
			if r.Required != nil {
				required = *r.Required
			}
			reqs[i] = model.Requirement{ID: r.ID, DocumentTypeID: r.DocumentTypeID, Required: required}
			if r.DocumentTypeID != "" {
				reqs[i].DocumentType = &model.DocumentType{ID: r.DocumentTypeID, Name: r.DocumentName}
			}
		}

		uploads := make([]model.Upload, len(req.Uploads))
		for i, u := range req.Uploads {
			// Already validated as YYYY-MM-DD.
			expiresAt, _ := parseDate(u.ExpiresAt)
			uploads[i] = model.Upload{
				ID:             u.ID,
				DocumentTypeID: u.DocumentTypeID,
				Filename:       u.Filename,
				UploadedAt:     u.UploadedAt,
				ExpiresAt:      expiresAt,
			}
		}

		return c.JSON(svc.Evaluate(c.UserContext(), reqs, uploads))
	}
}
