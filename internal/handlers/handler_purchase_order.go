package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// purchaseOrderHandler handles HTTP requests for purchase order operations.
type purchaseOrderHandler struct {
	service portssvc.PurchaseOrderSvcFacade
}

func newPurchaseOrderHandler(service portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{service: service}
}

func registerPurchaseOrderRoutes(rg *gin.RouterGroup, service portssvc.PurchaseOrderSvcFacade) {
	h := newPurchaseOrderHandler(service)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.CreatePurchaseOrder)
		orders.GET("", h.ListPurchaseOrders)
		orders.GET("/:id", h.GetPurchaseOrder)
		orders.PUT("/:id", h.UpdatePurchaseOrder)
		orders.POST("/:id/status", h.ChangeStatus)
	}
}

// CreatePurchaseOrder godoc
// @Summary Create a purchase order
// @Description Allocates the next PO number, computes totals and persists the order in DRAFT.
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order body dto.CreatePurchaseOrderRequest true "Order to create"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.service.CreatePurchaseOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create purchase order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

// ListPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PurchaseOrderResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	orders, err := h.service.ListPurchaseOrders(c.Request.Context(), params.Status, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list purchase orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPurchaseOrderResponse(orders))
}

// GetPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{id} [get]
func (h *purchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	order, err := h.service.GetPurchaseOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// UpdatePurchaseOrder godoc
// @Summary Update a purchase order
// @Description Replaces the line items and header fields. Only DRAFT orders are editable.
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param order body dto.UpdatePurchaseOrderRequest true "New order content"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{id} [put]
func (h *purchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.service.UpdatePurchaseOrder(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// ChangeStatus godoc
// @Summary Change purchase order status
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param status body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{id}/status [post]
func (h *purchaseOrderHandler) ChangeStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.service.ChangePurchaseOrderStatus(c.Request.Context(), c.Param("id"), domain.DocumentStatus(req.Status), userID)
	if err != nil {
		respondError(c, err, "Failed to change purchase order status")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}
