package http

import (
	"errors"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reviews-api/internal/application/dto"
	"github.com/jhoicas/reviews-api/internal/application/review"
	"github.com/jhoicas/reviews-api/internal/application/validation"
	"github.com/jhoicas/reviews-api/internal/domain"
)

// ReviewHandler maneja el alta, listado y exportación de reseñas.
type ReviewHandler struct {
	uc *review.ReviewUseCase
}

// NewReviewHandler construye el handler de reseñas.
func NewReviewHandler(uc *review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// requestMeta arma el contexto explícito del request autenticado: identidad
// del caller (del token) e IP del cliente (de la cadena de forwarding).
func requestMeta(c *fiber.Ctx) review.RequestMeta {
	return review.RequestMeta{
		ReviewerID: GetUserID(c),
		ClientIP:   clientIP(c),
	}
}

// clientIP devuelve la primera dirección de X-Forwarded-For si el header está
// presente y es una IP válida; si no, la dirección remota de la conexión.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	return c.IP()
}

// Create godoc
// @Summary      Crear reseña
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReviewRequest  true  "rating, title, summary, company"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  validation.Errors
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), requestMeta(c), in)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(verr.Body())
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar las reseñas del usuario autenticado
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.ReviewResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByReviewer(c.UserContext(), requestMeta(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar el historial de reseñas como PDF
// @Tags         reviews
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reviews/export/pdf [get]
func (h *ReviewHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportHistoryPDF(c.UserContext(), requestMeta(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
