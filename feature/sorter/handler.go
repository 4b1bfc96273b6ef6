package sorter

import (
	"errors"
	"io/fs"

	"file-sorter/core/logger"
	"file-sorter/core/record"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sort pipeline.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SortRequest is the body of POST /sort.
type SortRequest struct {
	Path string `json:"path"`
}

// RegisterRoutes registers the sorter routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sort")
	group.Post("/", h.HandleSort)
	group.Get("/verify", h.HandleVerify)
}

// HandleSort sorts a file on the server's filesystem.
// @Summary Sort File
// @Description Splits, sorts and merges the given file. Blocks until the run finished.
// @Tags sorter
// @Accept json
// @Produce json
// @Param request body SortRequest true "File to sort"
// @Success 200 {object} map[string]interface{} "Processing Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Source Not Found"
// @Failure 422 {object} map[string]string "Malformed Record"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sort [post]
func (h *Handler) HandleSort(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SortRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	l.Info("Sort requested", zap.String("path", req.Path))
	res, err := h.service.Sort(c.UserContext(), req.Path)
	if err != nil {
		l.Error("Sort failed", logger.WithCause(err)...)
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}

// HandleVerify checks whether a file is sorted.
// @Summary Verify File
// @Description Streams the file and reports the first pair of records out of order.
// @Tags sorter
// @Produce json
// @Param path query string true "File to verify"
// @Success 200 {object} VerifyReport "Verify Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "File Not Found"
// @Failure 422 {object} map[string]string "Malformed Record"
// @Router /sort/verify [get]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	report, err := Verify(c.UserContext(), path, h.service.cfg.ReadChunkBytes)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fiber.StatusNotFound
	case errors.Is(err, record.ErrFormat):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
