package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/core/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// --- Mock NumberingRepository ---
type MockNumberingRepository struct {
	mock.Mock
}

func (m *MockNumberingRepository) GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSequence), args.Error(1)
}

func (m *MockNumberingRepository) ListSequences(ctx context.Context) ([]domain.NumberingSequence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NumberingSequence), args.Error(1)
}

func (m *MockNumberingRepository) UpdateSequence(ctx context.Context, seq domain.NumberingSequence) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

// --- Test Suite ---
type NumberingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNumberingRepository
	service  portssvc.NumberingSvcFacade
}

func (suite *NumberingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNumberingRepository)
	suite.service = services.NewNumberingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *NumberingServiceTestSuite) TestUpdateSequence_Success() {
	ctx := context.Background()
	userID := "user-1"
	current := &domain.NumberingSequence{
		DocType:    domain.DocTypeQuote,
		Prefix:     "QT-",
		NextNumber: 10,
		Padding:    4,
	}
	newPrefix := "QTN-"
	newNext := int64(100)

	suite.mockRepo.On("GetSequence", ctx, domain.DocTypeQuote).Return(current, nil).Once()
	suite.mockRepo.On("UpdateSequence", ctx, mock.MatchedBy(func(seq domain.NumberingSequence) bool {
		return seq.Prefix == newPrefix && seq.NextNumber == newNext && seq.LastUpdatedBy == userID
	})).Return(nil).Once()

	seq, err := suite.service.UpdateSequence(ctx, domain.DocTypeQuote, dto.UpdateNumberingSequenceRequest{
		Prefix:     &newPrefix,
		NextNumber: &newNext,
	}, userID)

	suite.Require().NoError(err)
	suite.Equal(newPrefix, seq.Prefix)
	suite.Equal(newNext, seq.NextNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestUpdateSequence_RewindRejected() {
	ctx := context.Background()
	current := &domain.NumberingSequence{
		DocType:    domain.DocTypeQuote,
		Prefix:     "QT-",
		NextNumber: 50,
	}
	rewound := int64(10)

	suite.mockRepo.On("GetSequence", ctx, domain.DocTypeQuote).Return(current, nil).Once()

	seq, err := suite.service.UpdateSequence(ctx, domain.DocTypeQuote, dto.UpdateNumberingSequenceRequest{
		NextNumber: &rewound,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(seq)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSequence", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestUpdateSequence_PaddingOutOfRangeRejected() {
	ctx := context.Background()
	current := &domain.NumberingSequence{
		DocType:    domain.DocTypeQuote,
		Prefix:     "QT-",
		NextNumber: 5,
		Padding:    4,
	}
	tooWide := 11

	suite.mockRepo.On("GetSequence", ctx, domain.DocTypeQuote).Return(current, nil).Once()

	seq, err := suite.service.UpdateSequence(ctx, domain.DocTypeQuote, dto.UpdateNumberingSequenceRequest{
		Padding: &tooWide,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(seq)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSequence", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestUpdateSequence_NextNumberBelowOneRejected() {
	ctx := context.Background()
	current := &domain.NumberingSequence{
		DocType:    domain.DocTypeSalesOrder,
		Prefix:     "SO-",
		NextNumber: 12,
	}
	zero := int64(0)

	suite.mockRepo.On("GetSequence", ctx, domain.DocTypeSalesOrder).Return(current, nil).Once()

	seq, err := suite.service.UpdateSequence(ctx, domain.DocTypeSalesOrder, dto.UpdateNumberingSequenceRequest{
		NextNumber: &zero,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(seq)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSequence", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestNumberingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}
