package handler

import (
	"github.com/gofiber/fiber/v2"

	"docrisk/internal/service"
)

// uploadForm is accepted as multipart/form-data (with an optional "file"
// part) or as JSON for metadata-only uploads.
type uploadForm struct {
	DocumentTypeID string `json:"document_type_id" form:"document_type_id" validate:"required,uuid"`
	ExpiresAt      string `json:"expires_at" form:"expires_at" validate:"omitempty,datetime=2006-01-02"`
	Filename       string `json:"filename" form:"filename" validate:"omitempty,max=255"`
}

func ListUploads(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		uploads, err := svc.List(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": uploads})
	}
}

// CreateUpload records a document version for a client, storing the file when one is sent.
func CreateUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var form uploadForm
		if ok, err := bind(c, &form); !ok {
			return err
		}
		expiresAt, err := parseDate(form.ExpiresAt)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "expires_at must be YYYY-MM-DD")
		}

		in := service.UploadInput{
			ClientID:       id,
			DocumentTypeID: form.DocumentTypeID,
			Filename:       form.Filename,
			ExpiresAt:      expiresAt,
		}

		// A missing "file" part means a metadata-only upload.
		if fh, ferr := c.FormFile("file"); ferr == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()

			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}
			if in.Filename == "" {
				in.Filename = fh.Filename
			}
			in.Content = f
			in.ContentType = ct
			in.Size = fh.Size
		}

		u, err := svc.Upload(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

func DeleteUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		uploadID, ok := pathID(c, "uploadId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id, uploadID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadUpload returns a short-lived pre-signed URL for the stored file.
// With ?redirect=true it answers 302 to that URL instead.
func DownloadUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return invalidID(c)
		}
		uploadID, ok := pathID(c, "uploadId")
		if !ok {
			return invalidID(c)
		}
		url, err := svc.DownloadURL(c.UserContext(), id, uploadID)
		if err != nil {
			return writeServiceError(c, err)
		}
		if c.QueryBool("redirect") {
			return c.Redirect(url, fiber.StatusFound)
		}
		return c.JSON(fiber.Map{
			"url":        url,
			"expires_in": int(service.DownloadURLExpiry.Seconds()),
		})
	}
}
