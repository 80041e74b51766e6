package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
)

// ledgerService implements the transfer/adjustment protocol. All preconditions
// are checked before any mutation; the store-level balance check is repeated
// under the row lock inside the repository.
type ledgerService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

func NewLedgerService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{accountRepo: accountRepo, txnRepo: txnRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// TransferFunds moves amount between two accounts. Exactly one audit record is
// appended per attempt, carrying a fresh transaction id and the outcome.
func (s *ledgerService) TransferFunds(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) (*domain.TransactionRecord, error) {
	var err error
	switch {
	case !amount.IsPositive():
		err = apperrors.ErrInvalidAmount
	case fromAccountID == toAccountID:
		err = apperrors.ErrSameAccount
	default:
		err = s.accountRepo.TransferFunds(ctx, fromAccountID, toAccountID, amount)
	}

	record := domain.TransactionRecord{
		TxID:          uuid.NewString(),
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Status:        domain.StatusCompleted,
	}
	if err != nil {
		record.Status = domain.StatusFailed
	}

	// The audit row is written after the transfer resolves, so a rolled-back
	// attempt still leaves its Failed record. The log is not a source of
	// truth; losing a row must not turn a committed transfer into an error.
	if logErr := s.txnRepo.AppendTransaction(ctx, record); logErr != nil {
		slog.ErrorContext(ctx, "failed to append transaction record",
			slog.String("txid", record.TxID), slog.String("error", logErr.Error()))
	}

	if err != nil {
		return &record, err
	}
	return &record, nil
}

// AdjustAccountBalance applies a signed delta to one account (mint/burn).
func (s *ledgerService) AdjustAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal) error {
	if delta.IsZero() {
		return apperrors.ErrZeroAmount
	}
	return s.accountRepo.AdjustBalance(ctx, accountID, delta)
}

func (s *ledgerService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return s.accountRepo.GetBalance(ctx, accountID)
}
