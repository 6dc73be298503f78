package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/core/services"
	"github.com/clinicore/erp-ledger/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_FreshDatabase() {
	ctx := context.Background()
	chartSize := len(accounting.ChartOfAccounts())

	var seeded []domain.Account
	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).
		Run(func(args mock.Arguments) {
			seeded = args.Get(1).([]domain.Account)
		}).
		Return(chartSize, nil).Once()

	created, err := suite.service.SeedAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(chartSize, created)
	suite.Require().Len(seeded, chartSize)
	for _, account := range seeded {
		suite.NotEmpty(account.AccountID)
		suite.NotEmpty(account.Code)
		suite.NotEmpty(account.Name)
		suite.True(account.IsActive)
	}
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_AlreadySeeded() {
	ctx := context.Background()

	// Every code already exists; the insert skips all rows.
	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).Return(0, nil).Once()

	created, err := suite.service.SeedAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, created)
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_RepositoryError() {
	ctx := context.Background()
	dbErr := errors.New("insert failed")
	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).Return(0, dbErr).Once()

	created, err := suite.service.SeedAccounts(ctx)

	suite.Require().Error(err)
	suite.Equal(0, created)
	suite.True(errors.Is(err, dbErr))
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode_NotFound() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByCode(ctx, "NOPE")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Code: "CASH", AccountType: domain.Asset},
		{Code: "SALES", AccountType: domain.Income},
	}
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	got, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "acct-1", Code: "BANK", AccountType: domain.Asset, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "BANK").Return(account, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, "acct-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "BANK")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, "NOPE")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
