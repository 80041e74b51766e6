package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository interface.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, ownerID int64, variant domain.AccountVariant, name string) (string, error) {
	args := m.Called(ctx, ownerID, variant, name)
	return args.String(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) TransferFunds(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	args := m.Called(ctx, fromAccountID, toAccountID, amount)
	return args.Error(0)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, accountID string, delta decimal.Decimal) error {
	args := m.Called(ctx, accountID, delta)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteBusinessAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) TransferOwnership(ctx context.Context, accountID string, newOwnerID int64) error {
	args := m.Called(ctx, accountID, newOwnerID)
	return args.Error(0)
}

func (m *MockAccountRepository) EnsureBankAccount(ctx context.Context, ownerID int64, initialBalance decimal.Decimal) error {
	args := m.Called(ctx, ownerID, initialBalance)
	return args.Error(0)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// MockTransactionRepository is a mock type for the TransactionRepository interface.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) AppendTransaction(ctx context.Context, record domain.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// MockUserRepository is a mock type for the UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, tgID int64, username, fullName, code string) (string, error) {
	args := m.Called(ctx, tgID, username, fullName, code)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindUserByTelegramID(ctx context.Context, tgID int64) (*domain.User, error) {
	args := m.Called(ctx, tgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByAccount(ctx context.Context, accountID string) (*domain.User, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// MockRegistrationCodeRepository is a mock type for the RegistrationCodeRepository interface.
type MockRegistrationCodeRepository struct {
	mock.Mock
}

func (m *MockRegistrationCodeRepository) AddCode(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

var _ portsrepo.RegistrationCodeRepository = (*MockRegistrationCodeRepository)(nil)

// MockAdminRepository is a mock type for the AdminRepository interface.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) UpsertAdmin(ctx context.Context, tgID int64, name string) error {
	args := m.Called(ctx, tgID, name)
	return args.Error(0)
}

func (m *MockAdminRepository) RemoveAdmin(ctx context.Context, tgID int64) error {
	args := m.Called(ctx, tgID)
	return args.Error(0)
}

func (m *MockAdminRepository) ListAdmins(ctx context.Context) ([]domain.AdminGrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminGrant), args.Error(1)
}

func (m *MockAdminRepository) IsAdmin(ctx context.Context, tgID int64) (bool, error) {
	args := m.Called(ctx, tgID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.AdminRepository = (*MockAdminRepository)(nil)
