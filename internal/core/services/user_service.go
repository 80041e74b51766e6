package services

import (
	"context"

	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByTelegramID(ctx context.Context, tgID int64) (*domain.User, error) {
	return s.userRepo.FindUserByTelegramID(ctx, tgID)
}

func (s *userService) GetUserByAccount(ctx context.Context, accountID string) (*domain.User, error) {
	return s.userRepo.FindUserByAccount(ctx, accountID)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}
