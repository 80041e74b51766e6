package pgsql_test

import (
	"context"

	"github.com/solenbank/solen_backend/internal/apperrors"
)

func (s *RepositorySuite) TestRegisterUser_CodeIsSingleUse() {
	ctx := context.Background()
	s.Require().NoError(s.repos.CodeRepo.AddCode(ctx, "WELCOME-1"))

	accountID, err := s.repos.UserRepo.RegisterUser(ctx, 100, "alice", "Alice A", "WELCOME-1")
	s.Require().NoError(err)
	s.Regexp(`^ACC-\d{6}$`, accountID)

	_, err = s.repos.UserRepo.RegisterUser(ctx, 200, "bob", "Bob B", "WELCOME-1")
	s.ErrorIs(err, apperrors.ErrInvalidCode)

	// The losing redemption left no partial artifacts behind.
	_, err = s.repos.UserRepo.FindUserByTelegramID(ctx, 200)
	s.ErrorIs(err, apperrors.ErrNotFound)
	accounts, err := s.repos.AccountRepo.ListAccountsByOwner(ctx, 200)
	s.Require().NoError(err)
	s.Empty(accounts)
}

func (s *RepositorySuite) TestRegisterUser_DuplicateIdentityKeepsCode() {
	ctx := context.Background()
	s.Require().NoError(s.repos.CodeRepo.AddCode(ctx, "FIRST"))
	s.Require().NoError(s.repos.CodeRepo.AddCode(ctx, "SECOND"))

	_, err := s.repos.UserRepo.RegisterUser(ctx, 100, "alice", "Alice A", "FIRST")
	s.Require().NoError(err)

	_, err = s.repos.UserRepo.RegisterUser(ctx, 100, "alice", "Alice A", "SECOND")
	s.ErrorIs(err, apperrors.ErrAlreadyRegistered)

	// The rejected attempt rolled back, so the untouched code still works.
	_, err = s.repos.UserRepo.RegisterUser(ctx, 300, "carol", "Carol C", "SECOND")
	s.Require().NoError(err)
}

func (s *RepositorySuite) TestRegisterUser_MintsPersonalAccount() {
	ctx := context.Background()
	s.Require().NoError(s.repos.CodeRepo.AddCode(ctx, "WELCOME-2"))

	accountID, err := s.repos.UserRepo.RegisterUser(ctx, 100, "alice", "Alice A", "WELCOME-2")
	s.Require().NoError(err)

	user, err := s.repos.UserRepo.FindUserByTelegramID(ctx, 100)
	s.Require().NoError(err)
	s.Equal(accountID, user.PersonalAccountID)
	s.True(s.balance(accountID).IsZero())
}

func (s *RepositorySuite) TestAddCode_DuplicateRejected() {
	ctx := context.Background()
	s.Require().NoError(s.repos.CodeRepo.AddCode(ctx, "ONCE"))
	s.ErrorIs(s.repos.CodeRepo.AddCode(ctx, "ONCE"), apperrors.ErrDuplicateCode)
}
