package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
	"github.com/salilgupta4/absoms-backend/internal/utils"
)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetCompanyDetails(ctx context.Context) (*domain.CompanyDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDetails), args.Error(1)
}
func (m *MockSettingsService) UpdateCompanyDetails(ctx context.Context, req dto.UpdateCompanyDetailsRequest, userID string) (*domain.CompanyDetails, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDetails), args.Error(1)
}
func (m *MockSettingsService) GetPDFTemplate(ctx context.Context) (*domain.PDFTemplateSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PDFTemplateSettings), args.Error(1)
}
func (m *MockSettingsService) UpdatePDFTemplate(ctx context.Context, req dto.UpdatePDFTemplateRequest, userID string) (*domain.PDFTemplateSettings, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PDFTemplateSettings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock UserReaderService ---
type MockUserReaderService struct {
	mock.Mock
}

func (m *MockUserReaderService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserReaderService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserReaderService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserReaderService)(nil)

// --- Test Suite ---
type SettingsHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockSettingsService
	mockUsers *MockUserReaderService
	jwtSecret string
}

func (suite *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSvc = new(MockSettingsService)
	suite.mockUsers = new(MockUserReaderService)

	// Same middleware chain as the real v1 group: auth first, then role
	// enforcement for writes.
	v1 := suite.router.Group("/api/v1",
		middleware.AuthMiddleware(suite.jwtSecret),
		middleware.RequireWriteAccess(suite.mockUsers),
	)
	registerSettingsRoutes(v1, suite.mockSvc)
}

func (suite *SettingsHandlerTestSuite) requestAs(userID, method, url string, body any) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "absoms-test")
	suite.Require().NoError(err)
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (suite *SettingsHandlerTestSuite) userWithRole(userID string, role domain.UserRole) *domain.User {
	return &domain.User{
		UserID:   userID,
		Username: "someone",
		Name:     "Someone",
		Role:     role,
	}
}

// --- Test Cases ---

func (suite *SettingsHandlerTestSuite) TestUpdateCompanyDetails_ReadOnlyRoleForbidden() {
	userID := uuid.NewString()
	suite.mockUsers.On("GetUserByID", mock.Anything, userID).
		Return(suite.userWithRole(userID, domain.RoleReadOnly), nil).Once()

	body := dto.UpdateCompanyDetailsRequest{Name: "ABS OMS Industries"}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.requestAs(userID, http.MethodPut, "/api/v1/settings/company", body))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "UpdateCompanyDetails")
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *SettingsHandlerTestSuite) TestUpdateCompanyDetails_MemberRoleAllowed() {
	userID := uuid.NewString()
	suite.mockUsers.On("GetUserByID", mock.Anything, userID).
		Return(suite.userWithRole(userID, domain.RoleMember), nil).Once()

	updated := &domain.CompanyDetails{Name: "ABS OMS Industries", GSTIN: "29ABCDE1234F1Z5"}
	suite.mockSvc.On("UpdateCompanyDetails",
		mock.Anything,
		mock.MatchedBy(func(r dto.UpdateCompanyDetailsRequest) bool { return r.Name == "ABS OMS Industries" }),
		userID,
	).Return(updated, nil).Once()

	body := dto.UpdateCompanyDetailsRequest{Name: "ABS OMS Industries", GSTIN: "29ABCDE1234F1Z5"}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.requestAs(userID, http.MethodPut, "/api/v1/settings/company", body))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CompanyDetailsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ABS OMS Industries", resp.Name)

	suite.mockSvc.AssertExpectations(suite.T())
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *SettingsHandlerTestSuite) TestGetCompanyDetails_ReadOnlyRoleAllowed() {
	userID := uuid.NewString()
	details := &domain.CompanyDetails{Name: "ABS OMS Industries"}
	suite.mockSvc.On("GetCompanyDetails", mock.Anything).Return(details, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.requestAs(userID, http.MethodGet, "/api/v1/settings/company", nil))

	suite.Equal(http.StatusOK, w.Code)
	// Reads never trigger a role lookup.
	suite.mockUsers.AssertNotCalled(suite.T(), "GetUserByID")
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SettingsHandlerTestSuite) TestUpdatePDFTemplate_ReadOnlyRoleForbidden() {
	userID := uuid.NewString()
	suite.mockUsers.On("GetUserByID", mock.Anything, userID).
		Return(suite.userWithRole(userID, domain.RoleReadOnly), nil).Once()

	body := dto.UpdatePDFTemplateRequest{FooterText: "Thank you for your business"}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.requestAs(userID, http.MethodPut, "/api/v1/settings/pdf-template", body))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "UpdatePDFTemplate")
	suite.mockUsers.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSettingsHandler(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}
