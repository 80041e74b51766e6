package services

import (
	"context"
	"strings"

	"github.com/solenbank/solen_backend/internal/apperrors"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
)

type registrationService struct {
	userRepo portsrepo.UserRepository
	codeRepo portsrepo.RegistrationCodeRepository
}

func NewRegistrationService(userRepo portsrepo.UserRepository, codeRepo portsrepo.RegistrationCodeRepository) portssvc.RegistrationSvcFacade {
	return &registrationService{userRepo: userRepo, codeRepo: codeRepo}
}

var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

// RegisterUser redeems a single-use code and returns the new personal account
// id. The repository performs code consumption, account minting and user
// creation in one transaction.
func (s *registrationService) RegisterUser(ctx context.Context, tgID int64, username, fullName, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", apperrors.ErrInvalidCode
	}
	return s.userRepo.RegisterUser(ctx, tgID, username, fullName, code)
}

func (s *registrationService) AddRegistrationCode(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperrors.ErrInvalidCode
	}
	return s.codeRepo.AddCode(ctx, code)
}
