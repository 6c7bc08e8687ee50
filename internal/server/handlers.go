package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/brandboost/brandboost/internal/catalog"
	"github.com/brandboost/brandboost/internal/content"
)

// generateRequest is the POST /api/v1/generate body. Empty dimension
// fields default to description, professional and English.
type generateRequest struct {
	ProductID   string `json:"product_id"`
	ContentType string `json:"content_type"`
	Tone        string `json:"tone"`
	Language    string `json:"language"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleProducts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": s.deps.Products})
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	var body generateRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid request body"})
	}

	product, ok := s.findProduct(body.ProductID)
	if !ok {
		slog.Warn("Server.Generate: unknown product", "product_id", body.ProductID)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "unknown product: " + body.ProductID})
	}

	req := content.Request{
		Product:  product,
		Type:     content.TypeDescription,
		Tone:     content.ToneProfessional,
		Language: content.LangEnglish,
	}

	var err error
	if body.ContentType != "" {
		if req.Type, err = content.ParseContentType(body.ContentType); err != nil {
			return badRequest(c, err)
		}
	}
	if body.Tone != "" {
		if req.Tone, err = content.ParseTone(body.Tone); err != nil {
			return badRequest(c, err)
		}
	}
	if body.Language != "" {
		if req.Language, err = content.ParseLanguage(body.Language); err != nil {
			return badRequest(c, err)
		}
	}

	var res content.Result
	if s.deps.Generator == nil {
		if err := req.Validate(); err != nil {
			return badRequest(c, err)
		}
		res = content.Fallback(req, "")
	} else {
		res, err = s.deps.Generator.Generate(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, content.ErrInvalidRequest) || errors.Is(err, content.ErrMissingAttribute) {
				return badRequest(c, err)
			}
			slog.Error("Server.Generate: generation failed", "product", product.Name, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
	}

	snap := s.deps.Engine.Record(res)
	slog.Info("Server.Generate: content generated",
		"product", product.Name,
		"type", req.Type,
		"tone", req.Tone,
		"language", req.Language,
		"source", res.Source,
		"attempts", res.Attempts)

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"result":         res,
			"recommendation": content.Recommendation(req.Type, req.Tone),
			"analytics":      snap,
		},
	})
}

func (s *Server) handleAnalytics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"snapshot": s.deps.Engine.Snapshot(),
			"roi":      s.deps.Engine.ROI(s.deps.WriterRate, s.deps.AICost),
		},
	})
}

// findProduct resolves id against the catalog by ID first, then by name.
func (s *Server) findProduct(id string) (catalog.Product, bool) {
	if p, ok := catalog.FindByID(s.deps.Products, id); ok {
		return p, true
	}
	return catalog.FindByName(s.deps.Products, id)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
}
