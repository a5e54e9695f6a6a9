package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// quoteHandler handles HTTP requests for quote operations.
type quoteHandler struct {
	service portssvc.QuoteSvcFacade
}

func newQuoteHandler(service portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{service: service}
}

func registerQuoteRoutes(rg *gin.RouterGroup, service portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(service)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.POST("/:id/status", h.ChangeStatus)
		quotes.POST("/:id/revise", h.ReviseQuote)
		quotes.POST("/:id/convert", h.ConvertToSalesOrder)
	}
}

// CreateQuote godoc
// @Summary Create a quote
// @Description Allocates the next quote number, snapshots the customer and persists the quote in DRAFT.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote to create"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer or product not found"
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) CreateQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create quote")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// ListQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param status query string false "Status filter"
// @Param customerID query string false "Customer filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.QuoteResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes [get]
func (h *quoteHandler) ListQuotes(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	quotes, err := h.service.ListQuotes(c.Request.Context(), params.Status, params.CustomerID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(quotes))
}

// GetQuote godoc
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [get]
func (h *quoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.service.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// UpdateQuote godoc
// @Summary Update a quote
// @Description Replaces the line items and header fields. Only DRAFT quotes are editable.
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param quote body dto.UpdateQuoteRequest true "New quote content"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [put]
func (h *quoteHandler) UpdateQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quote, err := h.service.UpdateQuote(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// DeleteQuote godoc
// @Summary Delete a quote
// @Description Removes a DRAFT quote and its line items. Quotes past DRAFT cannot be deleted.
// @Tags quotes
// @Param id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [delete]
func (h *quoteHandler) DeleteQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteQuote(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete quote")
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStatus godoc
// @Summary Change quote status
// @Description Moves the quote through its lifecycle. Invalid transitions are rejected.
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param status body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id}/status [post]
func (h *quoteHandler) ChangeStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quote, err := h.service.ChangeQuoteStatus(c.Request.Context(), c.Param("id"), domain.DocumentStatus(req.Status), userID)
	if err != nil {
		respondError(c, err, "Failed to change quote status")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// ReviseQuote godoc
// @Summary Revise a quote
// @Description Supersedes a SENT or APPROVED quote with a new DRAFT revision carrying the same number.
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id}/revise [post]
func (h *quoteHandler) ReviseQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	revision, err := h.service.ReviseQuote(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to revise quote")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(revision))
}

// ConvertToSalesOrder godoc
// @Summary Convert a quote to a sales order
// @Description Creates a sales order from an APPROVED quote, closes the quote and links the two.
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param conversion body dto.ConvertQuoteRequest true "Conversion fields"
// @Success 201 {object} dto.SalesOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id}/convert [post]
func (h *quoteHandler) ConvertToSalesOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ConvertQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.service.ConvertQuoteToSalesOrder(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to convert quote")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSalesOrderResponse(order))
}
