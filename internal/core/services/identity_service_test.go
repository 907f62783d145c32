package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/agency_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/core/services"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type IdentityServiceTestSuite struct {
	suite.Suite
	hash     string
	mockRepo *MockPrincipalRepository
	service  portssvc.IdentitySvcFacade
}

func (suite *IdentityServiceTestSuite) SetupSuite() {
	suite.hash = utils.MustHashPassword("secret")
}

func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPrincipalRepository)
	suite.service = services.NewIdentityService(suite.mockRepo, nil)
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_StaffUser() {
	ctx := context.Background()
	suite.mockRepo.On("FindUsersByLogin", ctx, "lina@noah.com").Return([]domain.User{
		{UserID: "u3", Name: "Lina", Email: "lina@noah.com", Role: domain.RoleProjectManager, PasswordHash: suite.hash},
	}, nil).Once()

	p, err := suite.service.ResolveLogin(ctx, "lina@noah.com", "secret")

	suite.Require().NoError(err)
	suite.Equal("u3", p.ID)
	suite.Equal(domain.RoleProjectManager, p.Role)
	suite.Equal(domain.ModuleDashboard, p.LandingModule())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_FallsThroughToEmployeeByName() {
	ctx := context.Background()
	suite.mockRepo.On("FindUsersByLogin", ctx, "Khaled Carpenter").Return([]domain.User{}, nil).Once()
	suite.mockRepo.On("FindClientsByLogin", ctx, "Khaled Carpenter").Return([]domain.Client{}, nil).Once()
	suite.mockRepo.On("FindEmployeesByLogin", ctx, "Khaled Carpenter").Return([]domain.Employee{
		{ID: "e1", Name: "Khaled Carpenter", Type: domain.EmployeeCraftsman, PasswordHash: suite.hash},
	}, nil).Once()

	p, err := suite.service.ResolveLogin(ctx, "Khaled Carpenter", "secret")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, p.Role)
	suite.Equal("e1", p.EmployeeID)
	suite.Equal(domain.ModuleEmployeePortal, p.LandingModule())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_EarlierPoolWins() {
	ctx := context.Background()
	// Trustee and investor pools are never consulted once a client matches.
	suite.mockRepo.On("FindUsersByLogin", ctx, "shared").Return([]domain.User{}, nil).Once()
	suite.mockRepo.On("FindClientsByLogin", ctx, "shared").Return([]domain.Client{
		{ID: "c1", Name: "Client", Username: "shared", PasswordHash: suite.hash},
	}, nil).Once()

	p, err := suite.service.ResolveLogin(ctx, "shared", "secret")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleClient, p.Role)
	suite.Equal("shared", p.ClientUsername)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_WrongPasswordSkipsCandidate() {
	ctx := context.Background()
	suite.mockRepo.On("FindUsersByLogin", ctx, "yousef").Return([]domain.User{}, nil).Once()
	suite.mockRepo.On("FindClientsByLogin", ctx, "yousef").Return([]domain.Client{
		{ID: "c9", Username: "yousef", PasswordHash: utils.MustHashPassword("other")},
	}, nil).Once()
	suite.mockRepo.On("FindEmployeesByLogin", ctx, "yousef").Return([]domain.Employee{}, nil).Once()
	suite.mockRepo.On("FindTrusteesByLogin", ctx, "yousef").Return([]domain.Trustee{
		{ID: "t1", Name: "Yousef", Username: "yousef", PasswordHash: suite.hash},
	}, nil).Once()

	p, err := suite.service.ResolveLogin(ctx, "yousef", "secret")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleTrustee, p.Role)
	suite.Equal("t1", p.TrusteeID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_NoMatch() {
	ctx := context.Background()
	suite.mockRepo.On("FindUsersByLogin", ctx, "ghost").Return([]domain.User{}, nil).Once()
	suite.mockRepo.On("FindClientsByLogin", ctx, "ghost").Return([]domain.Client{}, nil).Once()
	suite.mockRepo.On("FindEmployeesByLogin", ctx, "ghost").Return([]domain.Employee{}, nil).Once()
	suite.mockRepo.On("FindTrusteesByLogin", ctx, "ghost").Return([]domain.Trustee{}, nil).Once()
	suite.mockRepo.On("FindInvestorsByLogin", ctx, "ghost").Return([]domain.Investor{
		{ID: "i1", Username: "ghost", PasswordHash: suite.hash},
	}, nil).Once()

	p, err := suite.service.ResolveLogin(ctx, "ghost", "wrong")

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_EmptyCredentials() {
	_, err := suite.service.ResolveLogin(context.Background(), "  ", "secret")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = suite.service.ResolveLogin(context.Background(), "admin@noah.com", "")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestResolveLogin_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindUsersByLogin", ctx, "admin@noah.com").Return(nil, assert.AnError).Once()

	p, err := suite.service.ResolveLogin(ctx, "admin@noah.com", "secret")

	suite.Nil(p)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}

func TestResolveLogin_SeededGeneralManager(t *testing.T) {
	store := memory.NewStore()
	memory.SeedDemoData(store)
	audit := services.NewAuditService(store)
	identity := services.NewIdentityService(store, audit)
	ctx := context.Background()

	p, err := identity.ResolveLogin(ctx, "admin@noah.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGeneralManager, p.Role)
	assert.Equal(t, domain.ModuleDashboard, p.LandingModule())

	entries, err := store.ListAuditLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "login", entries[0].Action)
	assert.Equal(t, p.ID, entries[0].PrincipalID)

	// Portal logins are not audited.
	investor, err := identity.ResolveLogin(ctx, "hadi", "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleInvestorPortal, investor.LandingModule())
	entries, err = store.ListAuditLogs(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestResolveLogin_SeededEmployeeUsernameIgnoresCase(t *testing.T) {
	store := memory.NewStore()
	memory.SeedDemoData(store)
	identity := services.NewIdentityService(store, nil)

	p, err := identity.ResolveLogin(context.Background(), "KHALED", "123456")
	require.NoError(t, err)
	assert.Equal(t, "e1", p.EmployeeID)
}
