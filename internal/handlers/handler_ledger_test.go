package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/dto"
	"github.com/clinicore/erp-ledger/internal/handlers"
	"github.com/clinicore/erp-ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) ProcessTransaction(ctx context.Context, req dto.ProcessTransactionRequest) (*domain.Transaction, *domain.Journal, error) {
	args := m.Called(ctx, req)
	var txn *domain.Transaction
	var journal *domain.Journal
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	if args.Get(1) != nil {
		journal = args.Get(1).(*domain.Journal)
	}
	return txn, journal, args.Error(2)
}

func (m *MockLedgerService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) ReverseJournal(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) SeedAccounts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) LedgerReport(ctx context.Context, accountCode string, from, to time.Time) (*domain.LedgerReport, error) {
	args := m.Called(ctx, accountCode, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerReport), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockLedgerSvc    *MockLedgerService
	mockAccountSvc   *MockAccountService
	mockReportingSvc *MockReportingService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockReportingSvc = new(MockReportingService)

	container := &portssvc.ServiceContainer{
		Ledger:    suite.mockLedgerSvc,
		Account:   suite.mockAccountSvc,
		Reporting: suite.mockReportingSvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *LedgerHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestProcessTransaction_Created() {
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TxnSales,
		Amount:        decimal.NewFromInt(1000),
		PaymentMode:   domain.PaymentDue,
	}
	journal := &domain.Journal{
		JournalID:     uuid.NewString(),
		ReferenceType: domain.ReferenceTypeTransaction,
		ReferenceID:   txn.TransactionID,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), Debit: decimal.NewFromInt(1000)},
			{LineID: uuid.NewString(), Credit: decimal.NewFromInt(1000)},
		},
	}
	suite.mockLedgerSvc.On("ProcessTransaction", mock.Anything, mock.AnythingOfType("dto.ProcessTransactionRequest")).
		Return(txn, journal, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"type":        "SALES",
		"amount":      "1000",
		"paymentMode": "due",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProcessTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.Transaction.TransactionID)
	suite.Require().NotNil(resp.Journal)
	suite.Len(resp.Journal.Lines, 2)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestProcessTransaction_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ProcessTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestProcessTransaction_UnsupportedType() {
	suite.mockLedgerSvc.On("ProcessTransaction", mock.Anything, mock.AnythingOfType("dto.ProcessTransactionRequest")).
		Return(nil, nil, fmt.Errorf("%w: DIVIDEND", apperrors.ErrUnsupportedTransactionType)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"type":   "DIVIDEND",
		"amount": "10",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestProcessTransaction_ValidationError() {
	suite.mockLedgerSvc.On("ProcessTransaction", mock.Anything, mock.AnythingOfType("dto.ProcessTransactionRequest")).
		Return(nil, nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"type":   "SALES",
		"amount": "5",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetJournal_NotFound() {
	journalID := uuid.NewString()
	suite.mockLedgerSvc.On("GetJournalByID", mock.Anything, journalID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/journals/"+journalID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetTrialBalance_OK() {
	report := &domain.TrialBalanceReport{
		AsOf: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "CASH", AccountType: domain.Asset, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{AccountCode: "SALES", AccountType: domain.Income, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(100),
		Status:      domain.Balanced,
	}
	suite.mockReportingSvc.On("TrialBalance", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(report, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2026-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("BALANCED", resp.Status)
	suite.Equal("2026-01-31", resp.AsOf)
	suite.Len(resp.Rows, 2)
}

func (suite *LedgerHandlerTestSuite) TestProcessTransaction_LenientReportsPostingError() {
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TxnSales,
		Amount:        decimal.NewFromInt(50),
		PaymentMode:   domain.PaymentCash,
	}
	suite.mockLedgerSvc.On("ProcessTransaction", mock.Anything, mock.AnythingOfType("dto.ProcessTransactionRequest")).
		Return(txn, nil, fmt.Errorf("posting failed for transaction %s: connection reset", txn.TransactionID)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"type":   "SALES",
		"amount": "50",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProcessTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.Transaction.TransactionID)
	suite.Nil(resp.Journal)
	suite.NotEmpty(resp.PostingError, "a failed posting must be spelled out, not just an omitted journal")
	suite.Contains(resp.PostingError, "posting failed")
}

func (suite *LedgerHandlerTestSuite) TestReverseJournal_Created() {
	journalID := uuid.NewString()
	reversing := &domain.Journal{
		JournalID:         uuid.NewString(),
		ReferenceType:     domain.ReferenceTypeJournal,
		ReferenceID:       journalID,
		Status:            domain.Posted,
		OriginalJournalID: &journalID,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), Credit: decimal.NewFromInt(500)},
			{LineID: uuid.NewString(), Debit: decimal.NewFromInt(500)},
		},
	}
	suite.mockLedgerSvc.On("ReverseJournal", mock.Anything, journalID).
		Return(reversing, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/journals/"+journalID+"/reverse", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(reversing.JournalID, resp.JournalID)
	suite.Require().NotNil(resp.OriginalJournalID)
	suite.Equal(journalID, *resp.OriginalJournalID)
	suite.Len(resp.Lines, 2)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestReverseJournal_AlreadyReversed() {
	journalID := uuid.NewString()
	suite.mockLedgerSvc.On("ReverseJournal", mock.Anything, journalID).
		Return(nil, fmt.Errorf("%w: journal %s has status REVERSED, expected POSTED", apperrors.ErrConflict, journalID)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/journals/"+journalID+"/reverse", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestReverseJournal_NotFound() {
	journalID := uuid.NewString()
	suite.mockLedgerSvc.On("ReverseJournal", mock.Anything, journalID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/journals/"+journalID+"/reverse", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetTrialBalance_AsOfCoversWholeDay() {
	report := &domain.TrialBalanceReport{
		AsOf:        time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Status:      domain.Balanced,
	}
	var capturedAsOf time.Time
	suite.mockReportingSvc.On("TrialBalance", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			capturedAsOf = args.Get(1).(time.Time)
		}).
		Return(report, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2026-08-28", nil)

	suite.Equal(http.StatusOK, w.Code)
	// A journal posted later on the report day must fall inside the bound.
	sameDayPosting := time.Date(2026, 8, 28, 7, 59, 29, 0, time.UTC)
	suite.False(capturedAsOf.Before(sameDayPosting), "asOf must cover postings made during the report day")
	suite.True(capturedAsOf.Before(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)), "asOf must not spill into the next day")
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerReport_ToDateCoversWholeDay() {
	report := &domain.LedgerReport{
		Account:        domain.Account{AccountID: uuid.NewString(), Code: "CASH", AccountType: domain.Asset},
		ClosingBalance: decimal.Zero,
	}
	var capturedTo time.Time
	suite.mockReportingSvc.On("LedgerReport", mock.Anything, "CASH", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			capturedTo = args.Get(3).(time.Time)
		}).
		Return(report, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/reports/ledger?account=CASH&fromDate=2026-08-01&toDate=2026-08-28", nil)

	suite.Equal(http.StatusOK, w.Code)
	sameDayPosting := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)
	suite.False(capturedTo.Before(sameDayPosting), "toDate must cover postings made during the end day")
	suite.True(capturedTo.Before(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)))
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerReport_MissingAccountParam() {
	w := suite.performJSON(http.MethodGet, "/api/v1/reports/ledger", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingSvc.AssertNotCalled(suite.T(), "LedgerReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
