package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"studydesk/internal/model"
	"studydesk/internal/service"
	"studydesk/internal/upload"
)

// Landing godoc
// @Summary Landing page data
// @Tags documents
// @Produce json
// @Success 200 {object} service.Landing
// @Router / [get]
func Landing(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Landing(c.UserContext()))
	}
}

// ListDocuments godoc
// @Summary Past documents
// @Tags documents
// @Produce json
// @Param q query string false "name contains, case-insensitive"
// @Param source query string false "computer, google-drive, image or video"
// @Param sort query string false "date or name"
// @Param order query string false "asc or desc"
// @Param limit query int false "page size, 0 for all"
// @Param offset query int false "items to skip"
// @Success 200 {object} service.DocumentList
// @Failure 400 {object} errorPayload
// @Router /past-documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q service.ListQuery
		if err := c.QueryParser(&q); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid query")
		}

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			if errors.Is(err, service.ErrInvalidQuery) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid query")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetDocument godoc
// @Summary Open a document
// @Tags documents
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} service.DocumentDetail
// @Failure 404 {object} errorPayload
// @Router /document/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		detail, err := svc.Open(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeDocumentNotFound(c)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(detail)
	}
}

// StartUpload godoc
// @Summary Upload a document
// @Description Starts a simulated upload. Poll the returned job until it is complete, then follow its redirect.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "document"
// @Param source formData string false "computer (default), google-drive, image or video"
// @Success 202 {object} upload.Job
// @Failure 400 {object} errorPayload
// @Router /uploads [post]
func StartUpload(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		// FormValue aliases the pooled request buffer; the source outlives the request
		source := model.Source(utils.CopyString(c.FormValue("source", string(model.SourceComputer))))
		if !source.Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SOURCE", "invalid upload source")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		job, err := svc.StartUpload(c.UserContext(), upload.Request{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Source:      source,
			Data:        data,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFileRequired):
				return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
			case errors.Is(err, service.ErrInvalidSource):
				return writeError(c, fiber.StatusBadRequest, "INVALID_SOURCE", "invalid upload source")
			case errors.Is(err, service.ErrUploadsStopped):
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "uploads are shutting down")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Location("/uploads/" + job.ID)
		return c.Status(fiber.StatusAccepted).JSON(job)
	}
}

// GetUpload godoc
// @Summary Upload progress
// @Tags uploads
// @Produce json
// @Param jobId path string true "upload job id"
// @Success 200 {object} upload.Job
// @Failure 404 {object} errorPayload
// @Router /uploads/{jobId} [get]
func GetUpload(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		job, err := svc.UploadStatus(c.UserContext(), c.Params("jobId"))
		if err != nil {
			if errors.Is(err, service.ErrJobNotFound) {
				return writeError(c, fiber.StatusNotFound, "UPLOAD_NOT_FOUND", "upload job not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(job)
	}
}
