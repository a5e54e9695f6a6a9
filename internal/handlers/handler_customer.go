package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// customerHandler handles HTTP requests for customer operations.
type customerHandler struct {
	service portssvc.CustomerSvcFacade
}

func newCustomerHandler(service portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{service: service}
}

func registerCustomerRoutes(rg *gin.RouterGroup, service portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(service)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeactivateCustomer)
	}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Description Creates a customer with its contacts and addresses. At most one contact keeps the primary flag and one address per kind keeps the default flag.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer to create"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) CreateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// ListCustomers godoc
// @Summary List customers
// @Description Lists active customers, optionally filtered by a case-insensitive name substring.
// @Tags customers
// @Produce json
// @Param name query string false "Name filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.CustomerResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) ListCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	customers, err := h.service.ListCustomers(c.Request.Context(), params.Name, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// GetCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.service.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Description Replaces the customer's details. Contacts and addresses are replaced as a set.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "New customer details"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) UpdateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// DeactivateCustomer godoc
// @Summary Deactivate a customer
// @Description Soft-deletes a customer. Existing documents keep their customer snapshot.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 204 "Customer deactivated"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) DeactivateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateCustomer(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate customer")
		return
	}
	c.Status(http.StatusNoContent)
}
