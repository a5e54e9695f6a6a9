package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// deliveryOrderHandler handles HTTP requests for delivery order operations.
type deliveryOrderHandler struct {
	service portssvc.DeliveryOrderSvcFacade
}

func newDeliveryOrderHandler(service portssvc.DeliveryOrderSvcFacade) *deliveryOrderHandler {
	return &deliveryOrderHandler{service: service}
}

func registerDeliveryOrderRoutes(rg *gin.RouterGroup, service portssvc.DeliveryOrderSvcFacade) {
	h := newDeliveryOrderHandler(service)

	orders := rg.Group("/delivery-orders")
	{
		orders.POST("", h.CreateDeliveryOrder)
		orders.GET("", h.ListDeliveryOrders)
		orders.GET("/:id", h.GetDeliveryOrder)
		orders.POST("/:id/dispatch", h.DispatchDeliveryOrder)
	}
}

// CreateDeliveryOrder godoc
// @Summary Record a delivery
// @Description Records a shipment against a sales order. Quantities may not exceed the pending quantity of their source lines; the sales order's delivered quantities and status move in the same transaction.
// @Tags delivery-orders
// @Accept json
// @Produce json
// @Param delivery body dto.CreateDeliveryOrderRequest true "Delivery to record"
// @Success 201 {object} dto.DeliveryOrderResponse
// @Failure 400 {object} ErrorResponse "Over-delivery or unknown source line"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-orders [post]
func (h *deliveryOrderHandler) CreateDeliveryOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeliveryOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	delivery, err := h.service.CreateDeliveryOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create delivery order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDeliveryOrderResponse(delivery))
}

// ListDeliveryOrders godoc
// @Summary List delivery orders
// @Tags delivery-orders
// @Produce json
// @Param status query string false "Status filter"
// @Param customerID query string false "Customer filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.DeliveryOrderResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-orders [get]
func (h *deliveryOrderHandler) ListDeliveryOrders(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	deliveries, err := h.service.ListDeliveryOrders(c.Request.Context(), params.Status, params.CustomerID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list delivery orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDeliveryOrderResponse(deliveries))
}

// GetDeliveryOrder godoc
// @Summary Get a delivery order by ID
// @Tags delivery-orders
// @Produce json
// @Param id path string true "Delivery order ID"
// @Success 200 {object} dto.DeliveryOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-orders/{id} [get]
func (h *deliveryOrderHandler) GetDeliveryOrder(c *gin.Context) {
	delivery, err := h.service.GetDeliveryOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get delivery order")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryOrderResponse(delivery))
}

// DispatchDeliveryOrder godoc
// @Summary Dispatch a delivery order
// @Description Marks a DRAFT delivery order as DISPATCHED.
// @Tags delivery-orders
// @Produce json
// @Param id path string true "Delivery order ID"
// @Success 200 {object} dto.DeliveryOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-orders/{id}/dispatch [post]
func (h *deliveryOrderHandler) DispatchDeliveryOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	delivery, err := h.service.DispatchDeliveryOrder(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to dispatch delivery order")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryOrderResponse(delivery))
}
