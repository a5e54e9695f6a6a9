package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// settingsHandler handles HTTP requests for the settings singletons.
type settingsHandler struct {
	service portssvc.SettingsSvcFacade
}

func newSettingsHandler(service portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{service: service}
}

func registerSettingsRoutes(rg *gin.RouterGroup, service portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(service)

	settings := rg.Group("/settings")
	{
		settings.GET("/company", h.GetCompanyDetails)
		settings.PUT("/company", h.UpdateCompanyDetails)
		settings.GET("/pdf-template", h.GetPDFTemplate)
		settings.PUT("/pdf-template", h.UpdatePDFTemplate)
	}
}

// GetCompanyDetails godoc
// @Summary Get the company profile
// @Description Returns the company profile singleton, seeding defaults when unset.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.CompanyDetailsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/company [get]
func (h *settingsHandler) GetCompanyDetails(c *gin.Context) {
	details, err := h.service.GetCompanyDetails(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get company details")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyDetailsResponse(details))
}

// UpdateCompanyDetails godoc
// @Summary Update the company profile
// @Tags settings
// @Accept json
// @Produce json
// @Param company body dto.UpdateCompanyDetailsRequest true "Company profile"
// @Success 200 {object} dto.CompanyDetailsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/company [put]
func (h *settingsHandler) UpdateCompanyDetails(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	details, err := h.service.UpdateCompanyDetails(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update company details")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyDetailsResponse(details))
}

// GetPDFTemplate godoc
// @Summary Get PDF template settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.PDFTemplateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/pdf-template [get]
func (h *settingsHandler) GetPDFTemplate(c *gin.Context) {
	tmpl, err := h.service.GetPDFTemplate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get PDF template")
		return
	}
	c.JSON(http.StatusOK, dto.ToPDFTemplateResponse(tmpl))
}

// UpdatePDFTemplate godoc
// @Summary Update PDF template settings
// @Tags settings
// @Accept json
// @Produce json
// @Param template body dto.UpdatePDFTemplateRequest true "Template settings"
// @Success 200 {object} dto.PDFTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/pdf-template [put]
func (h *settingsHandler) UpdatePDFTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePDFTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tmpl, err := h.service.UpdatePDFTemplate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update PDF template")
		return
	}
	c.JSON(http.StatusOK, dto.ToPDFTemplateResponse(tmpl))
}
