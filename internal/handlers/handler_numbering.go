package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// numberingHandler handles HTTP requests for document numbering sequences.
type numberingHandler struct {
	service portssvc.NumberingSvcFacade
}

func newNumberingHandler(service portssvc.NumberingSvcFacade) *numberingHandler {
	return &numberingHandler{service: service}
}

func registerNumberingRoutes(rg *gin.RouterGroup, service portssvc.NumberingSvcFacade) {
	h := newNumberingHandler(service)

	numbering := rg.Group("/settings/numbering")
	{
		numbering.GET("", h.ListSequences)
		numbering.GET("/:docType", h.GetSequence)
		numbering.PUT("/:docType", h.UpdateSequence)
	}
}

// ListSequences godoc
// @Summary List numbering sequences
// @Description Returns the configured sequence for each document type, including a preview of the next number.
// @Tags settings
// @Produce json
// @Success 200 {array} dto.NumberingSequenceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/numbering [get]
func (h *numberingHandler) ListSequences(c *gin.Context) {
	sequences, err := h.service.ListSequences(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list numbering sequences")
		return
	}
	c.JSON(http.StatusOK, dto.ToListNumberingSequenceResponse(sequences))
}

// GetSequence godoc
// @Summary Get a numbering sequence
// @Tags settings
// @Produce json
// @Param docType path string true "Document type" Enums(QUOTE, SALES_ORDER, DELIVERY_ORDER, PURCHASE_ORDER)
// @Success 200 {object} dto.NumberingSequenceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/numbering/{docType} [get]
func (h *numberingHandler) GetSequence(c *gin.Context) {
	seq, err := h.service.GetSequence(c.Request.Context(), domain.DocumentType(c.Param("docType")))
	if err != nil {
		respondError(c, err, "Failed to get numbering sequence")
		return
	}
	c.JSON(http.StatusOK, dto.ToNumberingSequenceResponse(seq))
}

// UpdateSequence godoc
// @Summary Update a numbering sequence
// @Description Changes the prefix, padding, suffix or next number. Lowering the next number below an already issued value is rejected.
// @Tags settings
// @Accept json
// @Produce json
// @Param docType path string true "Document type" Enums(QUOTE, SALES_ORDER, DELIVERY_ORDER, PURCHASE_ORDER)
// @Param sequence body dto.UpdateNumberingSequenceRequest true "Fields to update"
// @Success 200 {object} dto.NumberingSequenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/numbering/{docType} [put]
func (h *numberingHandler) UpdateSequence(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNumberingSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	seq, err := h.service.UpdateSequence(c.Request.Context(), domain.DocumentType(c.Param("docType")), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update numbering sequence")
		return
	}
	c.JSON(http.StatusOK, dto.ToNumberingSequenceResponse(seq))
}
