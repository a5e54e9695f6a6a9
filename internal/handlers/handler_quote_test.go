package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
	"github.com/salilgupta4/absoms-backend/internal/utils"
)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ListQuotes(ctx context.Context, status string, customerID string, limit int, offset int) ([]domain.Quote, error) {
	args := m.Called(ctx, status, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ChangeQuoteStatus(ctx context.Context, quoteID string, to domain.DocumentStatus, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ReviseQuote(ctx context.Context, quoteID string, userID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	args := m.Called(ctx, quoteID, userID)
	return args.Error(0)
}
func (m *MockQuoteService) ConvertQuoteToSalesOrder(ctx context.Context, quoteID string, req dto.ConvertQuoteRequest, userID string) (*domain.SalesOrder, error) {
	args := m.Called(ctx, quoteID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Test Suite ---
type QuoteHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockQuoteService
	jwtSecret string
}

func (suite *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSvc = new(MockQuoteService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerQuoteRoutes(v1, suite.mockSvc)
}

func (suite *QuoteHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "absoms-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *QuoteHandlerTestSuite) authedRequest(method, url string, body any) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sampleQuote(quoteID string) *domain.Quote {
	rate := decimal.NewFromInt(250)
	qty := decimal.NewFromInt(4)
	return &domain.Quote{
		QuoteID:     quoteID,
		QuoteNumber: "QT-0042",
		Revision:    1,
		Customer: domain.CustomerSnapshot{
			CustomerID:   uuid.NewString(),
			CustomerName: "Acme Industries",
			GSTIN:        "29ABCDE1234F1Z5",
		},
		Items: []domain.LineItem{
			{
				LineItemID:  uuid.NewString(),
				ProductID:   uuid.NewString(),
				ProductName: "Steel Bracket",
				Quantity:    qty,
				Unit:        "NOS",
				Rate:        rate,
				GSTRate:     decimal.NewFromInt(18),
				Amount:      decimal.NewFromInt(1000),
				TaxAmount:   decimal.NewFromInt(180),
			},
		},
		Totals: domain.DocumentTotals{
			Subtotal:   decimal.NewFromInt(1000),
			TotalTax:   decimal.NewFromInt(180),
			GrandTotal: decimal.NewFromInt(1180),
		},
		Status:    domain.StatusDraft,
		QuoteDate: time.Now().Truncate(24 * time.Hour),
	}
}

// --- Test Cases ---

func (suite *QuoteHandlerTestSuite) TestGetQuote_Success() {
	quoteID := uuid.NewString()
	expected := sampleQuote(quoteID)

	suite.mockSvc.On("GetQuoteByID", mock.Anything, quoteID).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/quotes/"+quoteID, nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(quoteID, resp.QuoteID)
	suite.Equal("QT-0042", resp.QuoteNumber)
	suite.Equal("DRAFT", resp.Status)
	suite.Len(resp.Items, 1)
	suite.True(resp.Totals.GrandTotal.Equal(decimal.NewFromInt(1180)))

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestGetQuote_NotFound() {
	quoteID := uuid.NewString()
	suite.mockSvc.On("GetQuoteByID", mock.Anything, quoteID).Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/quotes/"+quoteID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestGetQuote_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/quotes/"+uuid.NewString(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "GetQuoteByID")
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_Success() {
	quoteID := uuid.NewString()
	expected := sampleQuote(quoteID)

	reqBody := dto.CreateQuoteRequest{
		CustomerID: expected.Customer.CustomerID,
		QuoteDate:  time.Now(),
		Items: []dto.LineItemRequest{
			{ProductID: expected.Items[0].ProductID, Quantity: decimal.NewFromInt(4)},
		},
	}

	suite.mockSvc.On("CreateQuote",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateQuoteRequest) bool {
			return r.CustomerID == reqBody.CustomerID && len(r.Items) == 1
		}),
		mock.AnythingOfType("string"),
	).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/quotes", reqBody))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.QuoteResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(quoteID, resp.QuoteID)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_MissingItems() {
	reqBody := dto.CreateQuoteRequest{
		CustomerID: uuid.NewString(),
		QuoteDate:  time.Now(),
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/quotes", reqBody))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateQuote")
}

func (suite *QuoteHandlerTestSuite) TestChangeStatus_InvalidTransition() {
	quoteID := uuid.NewString()
	transitionErr := fmt.Errorf("%w: cannot move quote from CLOSED to DRAFT", apperrors.ErrValidation)

	suite.mockSvc.On("ChangeQuoteStatus",
		mock.Anything, quoteID, domain.StatusDraft, mock.AnythingOfType("string"),
	).Return(nil, transitionErr).Once()

	body := dto.ChangeStatusRequest{Status: "DRAFT"}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/quotes/"+quoteID+"/status", body))

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "cannot move quote")

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestConvert_Success() {
	quoteID := uuid.NewString()
	expected := &domain.SalesOrder{
		SalesOrderID:  uuid.NewString(),
		OrderNumber:   "SO-0007",
		SourceQuoteID: quoteID,
		Customer: domain.CustomerSnapshot{
			CustomerID:   uuid.NewString(),
			CustomerName: "Acme Industries",
		},
		Status:    domain.StatusApproved,
		OrderDate: time.Now(),
	}

	suite.mockSvc.On("ConvertQuoteToSalesOrder",
		mock.Anything, quoteID, mock.AnythingOfType("dto.ConvertQuoteRequest"), mock.AnythingOfType("string"),
	).Return(expected, nil).Once()

	body := dto.ConvertQuoteRequest{ClientPONumber: "PO-991"}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/quotes/"+quoteID+"/convert", body))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SalesOrderResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SalesOrderID, resp.SalesOrderID)
	suite.Equal(quoteID, resp.SourceQuoteID)

	suite.mockSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestQuoteHandler(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}
