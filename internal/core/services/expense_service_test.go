package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/core/services"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
	ctx      context.Context
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo, services.WithExpenseClock(fixedClock(testNow)))
	suite.ctx = context.Background()
}

func fuelRequest() dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Name:          "Carburant",
		Price:         decimal.NewFromInt(200),
		Responsable:   "Sami",
		Date:          time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "Cash",
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	suite.mockRepo.On("InsertExpense", suite.ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(suite.ctx, fuelRequest())

	suite.Require().NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal("Carburant", expense.Name)
	suite.Equal(testNow, expense.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmount() {
	req := fuelRequest()
	req.Price = decimal.Zero

	_, err := suite.service.CreateExpense(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_KeepsIdentity() {
	stored := &domain.Expense{
		ExpenseID:   "exp-1",
		Name:        "Carburant",
		AuditFields: domain.AuditFields{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
	suite.mockRepo.On("FindExpenseByID", suite.ctx, "exp-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateExpenseByID", suite.ctx, "exp-1", mock.AnythingOfType("domain.Expense")).Return(int64(1), nil).Once()

	req := dto.UpdateExpenseRequest{ExpenseID: "exp-1", CreateExpenseRequest: fuelRequest()}
	req.Price = decimal.NewFromInt(250)

	expense, err := suite.service.UpdateExpense(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("exp-1", expense.ExpenseID)
	suite.Equal("250", expense.Price.String())
	suite.Equal(createdAt, expense.CreatedAt)
	suite.Equal(testNow, expense.UpdatedAt)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	suite.mockRepo.On("FindExpenseByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateExpense(suite.ctx, dto.UpdateExpenseRequest{ExpenseID: "missing", CreateExpenseRequest: fuelRequest()})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses() {
	suite.mockRepo.On("FindAllExpenses", suite.ctx).Return([]domain.Expense{{ExpenseID: "a"}, {ExpenseID: "b"}}, nil).Once()

	expenses, err := suite.service.ListExpenses(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(expenses, 2)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	suite.mockRepo.On("DeleteExpenseByID", suite.ctx, "exp-1").Return(int64(1), nil).Once()

	deleted, err := suite.service.DeleteExpense(suite.ctx, "exp-1")

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
