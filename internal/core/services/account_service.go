package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
)

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateBusinessAccount(ctx context.Context, ownerID int64, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: business name cannot be empty", apperrors.ErrValidation)
	}
	return s.accountRepo.CreateAccount(ctx, ownerID, domain.Business, name)
}

func (s *accountService) ListUserAccounts(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByOwner(ctx, ownerID)
}

// CanUseAccount reports whether tgID owns accountID, optionally requiring a
// specific variant. An account that does not exist yields (false, nil); only
// store failures surface as errors.
func (s *accountService) CanUseAccount(ctx context.Context, tgID int64, accountID string, requiredVariant *domain.AccountVariant) (bool, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if acc.OwnerID != tgID {
		return false, nil
	}
	if requiredVariant != nil && acc.Variant != *requiredVariant {
		return false, nil
	}
	return true, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	return s.accountRepo.DeleteAccount(ctx, accountID)
}

func (s *accountService) DeleteBusinessAccount(ctx context.Context, accountID string) error {
	return s.accountRepo.DeleteBusinessAccount(ctx, accountID)
}

func (s *accountService) TransferOwnership(ctx context.Context, accountID string, newOwnerID int64) error {
	// The new owner is deliberately not validated against the users table;
	// business accounts may be handed to identities that never registered.
	return s.accountRepo.TransferOwnership(ctx, accountID, newOwnerID)
}
