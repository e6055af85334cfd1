package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"studydesk/internal/model"
	"studydesk/internal/service"
	"studydesk/internal/view"
)

// viewResponse carries a generated view. Data is omitted while pending.
type viewResponse struct {
	State view.State `json:"state"`
	Data  any        `json:"data,omitempty"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// writeView translates a view result. Pending answers 202 so clients can poll.
func writeView[T any](c *fiber.Ctx, res view.Result[T], err error, data func(T) any) error {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return writeDocumentNotFound(c)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, view.ErrLoaderStopped):
			return c.Status(fiber.StatusAccepted).JSON(viewResponse{State: view.StatePending})
		case errors.Is(err, service.ErrViewsClosed):
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "shutting down")
		}
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}

	switch res.State {
	case view.StateReady:
		return c.JSON(viewResponse{State: res.State, Data: data(res.Value)})
	case view.StateAbsent:
		return writeDocumentNotFound(c)
	default:
		return c.Status(fiber.StatusAccepted).JSON(viewResponse{State: view.StatePending})
	}
}

// GetNotebook godoc
// @Summary Notebook pages
// @Description Waits out the simulated generation unless wait=false. With page set, returns that page and its neighbours.
// @Tags views
// @Produce json
// @Param id path string true "document id"
// @Param page query int false "1-based page"
// @Param wait query bool false "block until generated (default true)"
// @Success 200 {object} viewResponse
// @Success 202 {object} viewResponse
// @Failure 404 {object} errorPayload
// @Router /document/{id}/notebook [get]
func GetNotebook(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 0)
		res, err := svc.Notebook(c.UserContext(), c.Params("id"), c.QueryBool("wait", true))
		return writeView(c, res, err, func(pages []model.NotebookPage) any {
			if page <= 0 {
				return pages
			}
			p, _ := view.PageAt(pages, page)
			return p
		})
	}
}

// GetResources godoc
// @Summary External resources
// @Tags views
// @Produce json
// @Param id path string true "document id"
// @Param type query string false "article, book, video or course"
// @Param wait query bool false "block until generated (default true)"
// @Success 200 {object} viewResponse
// @Success 202 {object} viewResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /document/{id}/resources [get]
func GetResources(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		typ := model.ResourceType(c.Query("type"))
		if typ != "" && !validResourceType(typ) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", "invalid resource type")
		}
		res, err := svc.Resources(c.UserContext(), c.Params("id"), c.QueryBool("wait", true))
		return writeView(c, res, err, func(list []model.ExternalResource) any {
			return view.FilterResources(list, typ)
		})
	}
}

func validResourceType(t model.ResourceType) bool {
	for _, known := range model.ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// GetMindMap godoc
// @Summary Mind map
// @Tags views
// @Produce json
// @Param id path string true "document id"
// @Param wait query bool false "block until generated (default true)"
// @Success 200 {object} viewResponse
// @Success 202 {object} viewResponse
// @Failure 404 {object} errorPayload
// @Router /document/{id}/mindmap [get]
func GetMindMap(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.MindMap(c.UserContext(), c.Params("id"), c.QueryBool("wait", true))
		return writeView(c, res, err, func(root *model.MindMapNode) any { return root })
	}
}

func writeChatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeDocumentNotFound(c)
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrSessionClosed):
		return writeError(c, fiber.StatusNotFound, "CHAT_NOT_FOUND", "chat session not found")
	case errors.Is(err, service.ErrEmptyMessage):
		return writeError(c, fiber.StatusBadRequest, "MESSAGE_REQUIRED", "message is required")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// OpenChat godoc
// @Summary Start a chat about a document
// @Tags chat
// @Produce json
// @Param id path string true "document id"
// @Success 201 {object} view.Snapshot
// @Failure 404 {object} errorPayload
// @Router /document/{id}/chat [post]
func OpenChat(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.OpenChat(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeChatError(c, err)
		}
		c.Location("/chat/" + snap.SessionID)
		return c.Status(fiber.StatusCreated).JSON(snap)
	}
}

// GetChat godoc
// @Summary Chat messages
// @Tags chat
// @Produce json
// @Param sessionId path string true "chat session id"
// @Success 200 {object} view.Snapshot
// @Failure 404 {object} errorPayload
// @Router /chat/{sessionId} [get]
func GetChat(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.Chat(c.UserContext(), c.Params("sessionId"))
		if err != nil {
			return writeChatError(c, err)
		}
		return c.JSON(snap)
	}
}

// SendChatMessage godoc
// @Summary Send a chat message
// @Description The user message is appended at once; the assistant reply follows after the simulated delay.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionId path string true "chat session id"
// @Param body body sendMessageRequest true "message"
// @Success 202 {object} view.Snapshot
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /chat/{sessionId}/messages [post]
func SendChatMessage(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid body")
		}
		snap, err := svc.SendChat(c.UserContext(), c.Params("sessionId"), req.Content)
		if err != nil {
			return writeChatError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(snap)
	}
}

// CloseChat godoc
// @Summary End a chat
// @Tags chat
// @Param sessionId path string true "chat session id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /chat/{sessionId} [delete]
func CloseChat(svc service.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.CloseChat(c.UserContext(), c.Params("sessionId")); err != nil {
			return writeChatError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
