package generator

import (
	"errors"

	"file-sorter/core/logger"
	"file-sorter/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the generator.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GenerateRequest is the body of POST /generate. Empty fields fall back to the configuration.
type GenerateRequest struct {
	Path string `json:"path"`
	Size string `json:"size"`
}

// RegisterRoutes registers the generator routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/generate", h.HandleGenerate)
}

// HandleGenerate writes a file of random records.
// @Summary Generate File
// @Description Writes random records until the file reaches the requested size.
// @Tags generator
// @Accept json
// @Produce json
// @Param request body GenerateRequest false "Target file and size"
// @Success 200 {object} map[string]interface{} "Processing Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if req.Path == "" {
		req.Path = h.service.cfg.Path
	}
	if req.Size == "" {
		req.Size = h.service.cfg.Size
	}

	size, err := utils.ParseSize(req.Size)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Generation requested", zap.String("path", req.Path), zap.String("size", utils.FormatSize(size)))
	res, err := h.service.Generate(c.UserContext(), req.Path, size)
	if errors.Is(err, ErrInvalidArgument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Generation failed", logger.WithCause(err)...)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}
