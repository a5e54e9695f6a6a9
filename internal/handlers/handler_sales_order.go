package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// salesOrderHandler handles HTTP requests for sales order operations.
type salesOrderHandler struct {
	service         portssvc.SalesOrderSvcFacade
	deliveryService portssvc.DeliveryOrderSvcFacade
}

func newSalesOrderHandler(service portssvc.SalesOrderSvcFacade, deliveryService portssvc.DeliveryOrderSvcFacade) *salesOrderHandler {
	return &salesOrderHandler{service: service, deliveryService: deliveryService}
}

func registerSalesOrderRoutes(rg *gin.RouterGroup, service portssvc.SalesOrderSvcFacade, deliveryService portssvc.DeliveryOrderSvcFacade) {
	h := newSalesOrderHandler(service, deliveryService)

	orders := rg.Group("/sales-orders")
	{
		orders.POST("", h.CreateSalesOrder)
		orders.GET("", h.ListSalesOrders)
		orders.GET("/:id", h.GetSalesOrder)
		orders.PUT("/:id", h.UpdateSalesOrder)
		orders.POST("/:id/close", h.CloseSalesOrder)
		orders.GET("/:id/delivery-orders", h.ListDeliveries)
	}
}

// CreateSalesOrder godoc
// @Summary Create a sales order
// @Description Creates a sales order directly, without a source quote.
// @Tags sales-orders
// @Accept json
// @Produce json
// @Param order body dto.CreateSalesOrderRequest true "Order to create"
// @Success 201 {object} dto.SalesOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer or product not found"
// @Security BearerAuth
// @Router /sales-orders [post]
func (h *salesOrderHandler) CreateSalesOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.service.CreateSalesOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create sales order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSalesOrderResponse(order))
}

// ListSalesOrders godoc
// @Summary List sales orders
// @Tags sales-orders
// @Produce json
// @Param status query string false "Status filter"
// @Param customerID query string false "Customer filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.SalesOrderResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-orders [get]
func (h *salesOrderHandler) ListSalesOrders(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	orders, err := h.service.ListSalesOrders(c.Request.Context(), params.Status, params.CustomerID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list sales orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesOrderResponse(orders))
}

// GetSalesOrder godoc
// @Summary Get a sales order by ID
// @Description Returns the order with per-line delivered and pending quantities.
// @Tags sales-orders
// @Produce json
// @Param id path string true "Sales order ID"
// @Success 200 {object} dto.SalesOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-orders/{id} [get]
func (h *salesOrderHandler) GetSalesOrder(c *gin.Context) {
	order, err := h.service.GetSalesOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get sales order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

// UpdateSalesOrder godoc
// @Summary Update a sales order
// @Description Patches header fields (client PO number, notes).
// @Tags sales-orders
// @Accept json
// @Produce json
// @Param id path string true "Sales order ID"
// @Param order body dto.UpdateSalesOrderRequest true "Fields to update"
// @Success 200 {object} dto.SalesOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-orders/{id} [put]
func (h *salesOrderHandler) UpdateSalesOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.service.UpdateSalesOrder(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update sales order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

// CloseSalesOrder godoc
// @Summary Close a sales order
// @Description Force-closes an order, for example when the undelivered remainder is cancelled.
// @Tags sales-orders
// @Produce json
// @Param id path string true "Sales order ID"
// @Success 200 {object} dto.SalesOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-orders/{id}/close [post]
func (h *salesOrderHandler) CloseSalesOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.service.CloseSalesOrder(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to close sales order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

// ListDeliveries godoc
// @Summary List deliveries for a sales order
// @Tags sales-orders
// @Produce json
// @Param id path string true "Sales order ID"
// @Success 200 {array} dto.DeliveryOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-orders/{id}/delivery-orders [get]
func (h *salesOrderHandler) ListDeliveries(c *gin.Context) {
	deliveries, err := h.deliveryService.ListDeliveryOrdersBySalesOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list deliveries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDeliveryOrderResponse(deliveries))
}
