package services_test

import (
	"context"
	"errors"
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

var (
	testNow   = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	createdAt = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	ctx      context.Context
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo,
		services.WithClientClock(fixedClock(testNow)),
		services.WithClientIDGenerator(func() string { return "client-1" }),
	)
	suite.ctx = context.Background()
}

func fieldsRequest() dto.ClientFieldsRequest {
	return dto.ClientFieldsRequest{
		Name:          "Groupe Atlas",
		PhoneNumber:   "22123456",
		Responsable:   "Sami Ben Ali",
		PaymentMethod: "Cash",
		DateOfBooking: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func storedClient() *domain.Client {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Client{
		ClientID:      "client-1",
		Name:          "Groupe Atlas",
		PhoneNumber:   "22123456",
		Responsable:   "Sami Ben Ali",
		PaymentMethod: "Cash",
		DateOfBooking: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Services: []domain.Service{
			{
				Name:                 "Camping",
				Price:                decimal.NewFromInt(500),
				UpfrontPayment:       decimal.NewFromInt(200),
				RemainingPayment:     decimal.NewFromInt(300),
				StartDate:            start,
				EndDate:              start.Add(24 * time.Hour),
				UpfrontPaymentMethod: "Cash",
			},
		},
		TotalPrice:     decimal.NewFromInt(500),
		RemainingTotal: decimal.NewFromInt(300),
		AuditFields:    domain.AuditFields{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}

func kayakInput() dto.ServiceInputRequest {
	return dto.ServiceInputRequest{
		Name:          "Kayak",
		Price:         decimal.NewFromInt(1500),
		StartDate:     time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		DurationHours: 3,
	}
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	req := dto.CreateClientRequest{
		ClientFieldsRequest: fieldsRequest(),
		Services: []dto.ServiceRequest{
			{Name: "Camping", Price: decimal.NewFromInt(500), UpfrontPayment: decimal.NewFromInt(200), UpfrontPaymentMethod: "Cash"},
			{Name: "Kayak", Price: decimal.NewFromInt(1500), UpfrontPayment: decimal.NewFromInt(1500), UpfrontPaymentMethod: "D17"},
		},
	}

	suite.mockRepo.On("InsertClient", suite.ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ClientID == "client-1" && len(c.Services) == 2
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("client-1", client.ClientID)
	suite.Equal("2000", client.TotalPrice.String())
	suite.Equal("300", client.RemainingTotal.String())
	suite.Equal(testNow, client.CreatedAt)
	suite.Equal(testNow, client.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_AllowsNoServices() {
	req := dto.CreateClientRequest{ClientFieldsRequest: fieldsRequest()}
	suite.mockRepo.On("InsertClient", suite.ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Empty(client.Services)
	suite.True(client.TotalPrice.IsZero())
}

func (suite *ClientServiceTestSuite) TestCreateClient_InvalidPhone() {
	fields := fieldsRequest()
	fields.PhoneNumber = "1234"
	_, err := suite.service.CreateClient(suite.ctx, dto.CreateClientRequest{ClientFieldsRequest: fields})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_RepositoryError() {
	dbErr := apperrors.Persistence("insert client", errors.New("connection reset"))
	suite.mockRepo.On("InsertClient", suite.ctx, mock.AnythingOfType("domain.Client")).Return(dbErr).Once()

	client, err := suite.service.CreateClient(suite.ctx, dto.CreateClientRequest{ClientFieldsRequest: fieldsRequest()})

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *ClientServiceTestSuite) TestBookClient_Success() {
	req := dto.BookClientRequest{
		ClientFieldsRequest: fieldsRequest(),
		Services:            []dto.ServiceInputRequest{kayakInput()},
	}
	suite.mockRepo.On("InsertClient", suite.ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := suite.service.BookClient(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(client.Services, 1)
	suite.Equal(time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC), client.Services[0].EndDate)
	suite.Equal("1500", client.RemainingTotal.String())
}

func (suite *ClientServiceTestSuite) TestBookClient_DuplicateService() {
	req := dto.BookClientRequest{
		ClientFieldsRequest: fieldsRequest(),
		Services:            []dto.ServiceInputRequest{kayakInput(), kayakInput()},
	}

	_, err := suite.service.BookClient(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "service 1")
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestBookClient_RequiresService() {
	_, err := suite.service.BookClient(suite.ctx, dto.BookClientRequest{ClientFieldsRequest: fieldsRequest()})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientServiceTestSuite) TestGetClient_NotFound() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClient(suite.ctx, "missing")

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestListClients_EmptyStore() {
	suite.mockRepo.On("FindAllClients", suite.ctx).Return(nil, nil).Once()

	clients, err := suite.service.ListClients(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(clients)
	suite.Empty(clients)
}

func (suite *ClientServiceTestSuite) TestReplaceClient_KeepsCreatedAt() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	req := dto.ReplaceClientRequest{
		ClientID:            "client-1",
		CreateClientRequest: dto.CreateClientRequest{ClientFieldsRequest: fieldsRequest()},
	}
	req.Name = "Groupe Atlas Sud"

	client, err := suite.service.ReplaceClient(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Groupe Atlas Sud", client.Name)
	suite.Equal(createdAt, client.CreatedAt)
	suite.Equal(testNow, client.UpdatedAt)
	suite.True(client.TotalPrice.IsZero())
}

func (suite *ClientServiceTestSuite) TestReplaceClient_NothingMatched() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(0), nil).Once()

	_, err := suite.service.ReplaceClient(suite.ctx, dto.ReplaceClientRequest{
		ClientID:            "client-1",
		CreateClientRequest: dto.CreateClientRequest{ClientFieldsRequest: fieldsRequest()},
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestPatchClient_OnlyTouchesGivenFields() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	phone := "41234567"
	client, err := suite.service.PatchClient(suite.ctx, "client-1", dto.PatchClientRequest{PhoneNumber: &phone})

	suite.Require().NoError(err)
	suite.Equal(phone, client.PhoneNumber)
	suite.Equal("Groupe Atlas", client.Name)
	suite.Len(client.Services, 1)
	suite.Equal("300", client.RemainingTotal.String())
}

func (suite *ClientServiceTestSuite) TestAddService_RecomputesTotals() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.MatchedBy(func(c domain.Client) bool {
		return len(c.Services) == 2 && c.TotalPrice.Equal(decimal.NewFromInt(2000))
	})).Return(int64(1), nil).Once()

	client, err := suite.service.AddService(suite.ctx, "client-1", kayakInput())

	suite.Require().NoError(err)
	suite.Equal("1800", client.RemainingTotal.String())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestAddService_Duplicate() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()

	in := kayakInput()
	in.Name = "Camping"
	_, err := suite.service.AddService(suite.ctx, "client-1", in)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClientByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateService_ReplacesInPlace() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	client, err := suite.service.UpdateService(suite.ctx, "client-1", 0, kayakInput())

	suite.Require().NoError(err)
	suite.Require().Len(client.Services, 1)
	suite.Equal("Kayak", client.Services[0].Name)
	suite.Equal("1500", client.TotalPrice.String())
}

func (suite *ClientServiceTestSuite) TestUpdateService_KeepsSettlementWhenAmountsUnchanged() {
	stored := storedClient()
	stored.Services[0].RemainingPaymentMethod = "Virement"
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	client, err := suite.service.UpdateService(suite.ctx, "client-1", 0, dto.ServiceInputRequest{
		Name:                 "Camping",
		Price:                decimal.NewFromInt(500),
		UpfrontPayment:       decimal.NewFromInt(200),
		UpfrontPaymentMethod: "Cash",
		StartDate:            time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC),
		DurationHours:        48,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.Paid, client.Services[0].Status())
	suite.Equal("Virement", client.Services[0].RemainingPaymentMethod)
	suite.True(client.OutstandingTotal().IsZero())
}

func (suite *ClientServiceTestSuite) TestRemoveService_OutOfRange() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()

	_, err := suite.service.RemoveService(suite.ctx, "client-1", 4)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientServiceTestSuite) TestRemoveService_Success() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	client, err := suite.service.RemoveService(suite.ctx, "client-1", 0)

	suite.Require().NoError(err)
	suite.Empty(client.Services)
	suite.True(client.RemainingTotal.IsZero())
}

func (suite *ClientServiceTestSuite) TestSettleService_MarksPaid() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	client, err := suite.service.SettleService(suite.ctx, "client-1", 0, "Virement")

	suite.Require().NoError(err)
	suite.Equal(domain.Paid, client.Services[0].Status())
	suite.Equal("Virement", client.Services[0].RemainingPaymentMethod)
	suite.Equal("300", client.RemainingTotal.String())
	suite.True(client.OutstandingTotal().IsZero())
}

func (suite *ClientServiceTestSuite) TestSettleService_DuplicateNamesSettlesGivenIndex() {
	stored := storedClient()
	second := stored.Services[0]
	second.StartDate = second.StartDate.AddDate(0, 0, 7)
	second.EndDate = second.EndDate.AddDate(0, 0, 7)
	stored.Services = append(stored.Services, second)
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateClientByID", suite.ctx, "client-1", mock.AnythingOfType("domain.Client")).Return(int64(1), nil).Once()

	client, err := suite.service.SettleService(suite.ctx, "client-1", 1, "Virement")

	suite.Require().NoError(err)
	suite.Require().Len(client.Services, 2)
	suite.Equal(domain.PartiallyPaid, client.Services[0].Status())
	suite.Empty(client.Services[0].RemainingPaymentMethod)
	suite.Equal(domain.Paid, client.Services[1].Status())
	suite.Equal("Virement", client.Services[1].RemainingPaymentMethod)
}

func (suite *ClientServiceTestSuite) TestSettleService_IndexOutOfRange() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()

	_, err := suite.service.SettleService(suite.ctx, "client-1", 3, "Virement")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientServiceTestSuite) TestSettleService_UnknownMethod() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()

	_, err := suite.service.SettleService(suite.ctx, "client-1", 0, "Bitcoin")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_ReturnsCount() {
	suite.mockRepo.On("DeleteClientByID", suite.ctx, "missing").Return(int64(0), nil).Once()

	deleted, err := suite.service.DeleteClient(suite.ctx, "missing")

	suite.Require().NoError(err)
	suite.Equal(int64(0), deleted)
}

func (suite *ClientServiceTestSuite) TestInvoice_BillsFullAmount() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "client-1").Return(storedClient(), nil).Once()

	view, err := suite.service.Invoice(suite.ctx, "client-1")

	suite.Require().NoError(err)
	suite.Equal("Groupe Atlas", view.ClientName)
	suite.Equal("500", view.TotalAmount.String())
	suite.Len(view.Services, 1)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
