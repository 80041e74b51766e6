package services_test

import (
	"context"
	"testing"

	"github.com/solenbank/solen_backend/internal/apperrors"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RegistrationServiceTestSuite struct {
	suite.Suite
	mockUsers *MockUserRepository
	mockCodes *MockRegistrationCodeRepository
	service   portssvc.RegistrationSvcFacade
}

func (s *RegistrationServiceTestSuite) SetupTest() {
	s.mockUsers = new(MockUserRepository)
	s.mockCodes = new(MockRegistrationCodeRepository)
	s.service = services.NewRegistrationService(s.mockUsers, s.mockCodes)
}

func (s *RegistrationServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()

	s.mockUsers.On("RegisterUser", ctx, int64(42), "alice", "Alice", "X1").
		Return("ACC-104822", nil).Once()

	accountID, err := s.service.RegisterUser(ctx, 42, "alice", "Alice", "X1")

	s.Require().NoError(err)
	s.Equal("ACC-104822", accountID)
	s.mockUsers.AssertExpectations(s.T())
}

func (s *RegistrationServiceTestSuite) TestRegisterUser_TrimsCode() {
	ctx := context.Background()

	s.mockUsers.On("RegisterUser", ctx, int64(42), "alice", "Alice", "X1").
		Return("ACC-104822", nil).Once()

	_, err := s.service.RegisterUser(ctx, 42, "alice", "Alice", "  X1  ")

	s.Require().NoError(err)
	s.mockUsers.AssertExpectations(s.T())
}

func (s *RegistrationServiceTestSuite) TestRegisterUser_BlankCode() {
	ctx := context.Background()

	_, err := s.service.RegisterUser(ctx, 42, "alice", "Alice", "   ")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidCode)
	s.mockUsers.AssertNotCalled(s.T(), "RegisterUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *RegistrationServiceTestSuite) TestRegisterUser_ConsumedCodeFails() {
	ctx := context.Background()

	// After a successful redemption the code row is gone, so a second attempt
	// with the same code reports an invalid code.
	s.mockUsers.On("RegisterUser", ctx, int64(43), "bob", "Bob", "X1").
		Return("", apperrors.ErrInvalidCode).Once()

	_, err := s.service.RegisterUser(ctx, 43, "bob", "Bob", "X1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidCode)
	s.mockUsers.AssertExpectations(s.T())
}

func (s *RegistrationServiceTestSuite) TestRegisterUser_AlreadyRegistered() {
	ctx := context.Background()

	s.mockUsers.On("RegisterUser", ctx, int64(42), "alice", "Alice", "X2").
		Return("", apperrors.ErrAlreadyRegistered).Once()

	_, err := s.service.RegisterUser(ctx, 42, "alice", "Alice", "X2")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrAlreadyRegistered)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockUsers.AssertExpectations(s.T())
}

func (s *RegistrationServiceTestSuite) TestAddRegistrationCode_Success() {
	ctx := context.Background()

	s.mockCodes.On("AddCode", ctx, "X1").Return(nil).Once()

	s.Require().NoError(s.service.AddRegistrationCode(ctx, " X1 "))
	s.mockCodes.AssertExpectations(s.T())
}

func (s *RegistrationServiceTestSuite) TestAddRegistrationCode_Blank() {
	ctx := context.Background()

	err := s.service.AddRegistrationCode(ctx, "   ")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidCode)
	s.mockCodes.AssertNotCalled(s.T(), "AddCode", mock.Anything, mock.Anything)
}

func (s *RegistrationServiceTestSuite) TestAddRegistrationCode_Duplicate() {
	ctx := context.Background()

	s.mockCodes.On("AddCode", ctx, "X1").Return(apperrors.ErrDuplicateCode).Once()

	err := s.service.AddRegistrationCode(ctx, "X1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicateCode)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockCodes.AssertExpectations(s.T())
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
