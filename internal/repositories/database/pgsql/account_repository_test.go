package pgsql_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/core/domain"
)

func (s *RepositorySuite) TestTransferFunds_MovesExactAmount() {
	ctx := context.Background()
	from := s.seedAccount(100, domain.Personal, "Alice", decimal.NewFromInt(300))
	to := s.seedAccount(200, domain.Personal, "Bob", decimal.NewFromInt(50))

	err := s.repos.AccountRepo.TransferFunds(ctx, from, to, decimal.NewFromInt(120))
	s.Require().NoError(err)

	s.True(s.balance(from).Equal(decimal.NewFromInt(180)), "source balance is %s", s.balance(from))
	s.True(s.balance(to).Equal(decimal.NewFromInt(170)), "destination balance is %s", s.balance(to))
}

// Opposite-direction transfers between the same pair must neither deadlock
// nor lose money: both row locks are taken in ascending id order, so every
// transfer serializes and the combined balance is conserved.
func (s *RepositorySuite) TestTransferFunds_ConcurrentOppositeTransfersConserveBalances() {
	ctx := context.Background()
	a := s.seedAccount(100, domain.Personal, "Alice", decimal.NewFromInt(500))
	b := s.seedAccount(200, domain.Personal, "Bob", decimal.NewFromInt(500))

	const rounds = 25
	amount := decimal.NewFromInt(7)

	var wg sync.WaitGroup
	errs := make(chan error, rounds*2)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- s.repos.AccountRepo.TransferFunds(ctx, a, b, amount)
		}()
		go func() {
			defer wg.Done()
			errs <- s.repos.AccountRepo.TransferFunds(ctx, b, a, amount)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	balA, balB := s.balance(a), s.balance(b)
	s.True(balA.Equal(decimal.NewFromInt(500)), "balance of %s drifted to %s", a, balA)
	s.True(balB.Equal(decimal.NewFromInt(500)), "balance of %s drifted to %s", b, balB)
}

func (s *RepositorySuite) TestTransferFunds_InsufficientFundsLeavesBalancesUntouched() {
	ctx := context.Background()
	from := s.seedAccount(100, domain.Personal, "Alice", decimal.NewFromInt(10))
	to := s.seedAccount(200, domain.Personal, "Bob", decimal.NewFromInt(40))

	err := s.repos.AccountRepo.TransferFunds(ctx, from, to, decimal.NewFromInt(25))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	s.True(s.balance(from).Equal(decimal.NewFromInt(10)))
	s.True(s.balance(to).Equal(decimal.NewFromInt(40)))
}

func (s *RepositorySuite) TestTransferFunds_MissingAccountFails() {
	ctx := context.Background()
	from := s.seedAccount(100, domain.Personal, "Alice", decimal.NewFromInt(10))

	err := s.repos.AccountRepo.TransferFunds(ctx, from, "ACC-999999", decimal.NewFromInt(5))
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.True(s.balance(from).Equal(decimal.NewFromInt(10)))
}

func (s *RepositorySuite) TestAdjustBalance_RejectsNegativeResult() {
	ctx := context.Background()
	acc := s.seedAccount(100, domain.Personal, "Alice", decimal.NewFromInt(30))

	err := s.repos.AccountRepo.AdjustBalance(ctx, acc, decimal.NewFromInt(-45))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.True(s.balance(acc).Equal(decimal.NewFromInt(30)))
}

func (s *RepositorySuite) TestDeleteAccount_BankAccountProtected() {
	ctx := context.Background()
	err := s.repos.AccountRepo.EnsureBankAccount(ctx, 1, decimal.NewFromInt(1000))
	s.Require().NoError(err)

	for _, id := range []string{"ACC-001", "acc-001"} {
		err := s.repos.AccountRepo.DeleteAccount(ctx, id)
		s.ErrorIs(err, apperrors.ErrProtectedResource, "delete of %q must be refused", id)
	}

	s.True(s.balance(domain.BankAccountID).Equal(decimal.NewFromInt(1000)))
}

func (s *RepositorySuite) TestEnsureBankAccount_SecondCallKeepsBalance() {
	ctx := context.Background()
	s.Require().NoError(s.repos.AccountRepo.EnsureBankAccount(ctx, 1, decimal.NewFromInt(1000)))
	s.Require().NoError(s.repos.AccountRepo.AdjustBalance(ctx, domain.BankAccountID, decimal.NewFromInt(-400)))

	s.Require().NoError(s.repos.AccountRepo.EnsureBankAccount(ctx, 1, decimal.NewFromInt(1000)))
	s.True(s.balance(domain.BankAccountID).Equal(decimal.NewFromInt(600)))
}

func (s *RepositorySuite) TestDeleteBusinessAccount_IgnoresPersonalAccounts() {
	ctx := context.Background()
	personal := s.seedAccount(100, domain.Personal, "Alice", decimal.Zero)
	business := s.seedAccount(100, domain.Business, "Bakery", decimal.Zero)

	err := s.repos.AccountRepo.DeleteBusinessAccount(ctx, personal)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.repos.AccountRepo.DeleteBusinessAccount(ctx, business))
	_, err = s.repos.AccountRepo.FindAccountByID(ctx, business)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
