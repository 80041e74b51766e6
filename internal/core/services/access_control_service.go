package services

import (
	"context"

	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
)

// accessControlService resolves caller privileges. The owner is a deployment
// constant, not stored data; admins are persisted grants. Owner strictly
// outranks Admin, which outranks plain users.
type accessControlService struct {
	ownerID   int64
	adminRepo portsrepo.AdminRepository
}

func NewAccessControlService(ownerID int64, adminRepo portsrepo.AdminRepository) portssvc.AccessControlSvcFacade {
	return &accessControlService{ownerID: ownerID, adminRepo: adminRepo}
}

var _ portssvc.AccessControlSvcFacade = (*accessControlService)(nil)

func (s *accessControlService) IsOwner(tgID int64) bool {
	return tgID == s.ownerID
}

func (s *accessControlService) IsAdmin(ctx context.Context, tgID int64) (bool, error) {
	return s.adminRepo.IsAdmin(ctx, tgID)
}

func (s *accessControlService) IsAdminOrOwner(ctx context.Context, tgID int64) (bool, error) {
	if s.IsOwner(tgID) {
		return true, nil
	}
	return s.adminRepo.IsAdmin(ctx, tgID)
}

func (s *accessControlService) AddAdmin(ctx context.Context, tgID int64, name string) error {
	return s.adminRepo.UpsertAdmin(ctx, tgID, name)
}

func (s *accessControlService) RemoveAdmin(ctx context.Context, tgID int64) error {
	return s.adminRepo.RemoveAdmin(ctx, tgID)
}

func (s *accessControlService) ListAdmins(ctx context.Context) ([]domain.AdminGrant, error) {
	return s.adminRepo.ListAdmins(ctx)
}
