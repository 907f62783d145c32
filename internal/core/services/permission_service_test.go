package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/core/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	gm         = domain.Principal{ID: "u1", Name: "Noah Admin", Role: domain.RoleGeneralManager}
	accountant = domain.Principal{ID: "u2", Name: "Rami", Role: domain.RoleAccountant}
	engineer   = domain.Principal{ID: "u4", Name: "Omar", Role: domain.RoleEngineer}
	trusteeP   = domain.Principal{ID: "t1", Name: "Yousef", Role: domain.RoleTrustee, TrusteeID: "t1"}
)

var accountantPermissions = &domain.RolePermissions{
	Role: domain.RoleAccountant,
	CanView: []domain.ModuleTag{
		domain.ModuleDashboard, domain.ModuleTransactions, domain.ModuleReports, domain.ModuleProfitLoss,
	},
}

type PermissionServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockPermissionRepository
	mockAudit *MockAuditLogRepository
	service   portssvc.PermissionSvcFacade
	guard     portssvc.RouteGuardSvc
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPermissionRepository)
	suite.mockAudit = new(MockAuditLogRepository)
	suite.service = services.NewPermissionService(suite.mockRepo, suite.mockAudit)
	suite.guard = suite.service.(portssvc.RouteGuardSvc)
}

func (suite *PermissionServiceTestSuite) TestCanView_ExplicitList() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleAccountant).Return(accountantPermissions, nil).Twice()

	suite.True(suite.service.CanView(ctx, domain.RoleAccountant, domain.ModuleReports))
	suite.False(suite.service.CanView(ctx, domain.RoleAccountant, domain.ModuleHR))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestCanView_AbsentRoleAllowsEverything() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleGeneralManager).Return(nil, apperrors.ErrNotFound).Once()

	suite.True(suite.service.CanView(ctx, domain.RoleGeneralManager, domain.ModuleSettings))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestCanView_StoreErrorDenies() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleEngineer).Return(nil, assert.AnError).Once()

	suite.False(suite.service.CanView(ctx, domain.RoleEngineer, domain.ModuleProjects))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestNavigate_AliasIsChecked() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleAccountant).Return(accountantPermissions, nil).Once()

	decision := suite.guard.Navigate(ctx, accountant, domain.ModuleSYPTransactions)

	suite.True(decision.Allowed)
	suite.False(decision.Redirected)
	suite.Equal(domain.ModuleTransactions, decision.Checked)
	suite.Equal(domain.ModuleSYPTransactions, decision.Target)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestNavigate_DeniedRedirectsToDashboard() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleAccountant).Return(accountantPermissions, nil).Once()

	decision := suite.guard.Navigate(ctx, accountant, domain.ModuleManagerReports)

	suite.False(decision.Allowed)
	suite.True(decision.Redirected)
	suite.Equal(domain.ModuleHR, decision.Checked)
	suite.Equal(domain.ModuleDashboard, decision.Target)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestNavigate_DashboardAndUnknownModules() {
	ctx := context.Background()

	suite.True(suite.guard.Navigate(ctx, engineer, domain.ModuleDashboard).Allowed)

	decision := suite.guard.Navigate(ctx, engineer, domain.ModuleTrusteePortal)
	suite.False(decision.Allowed)
	suite.Equal(domain.ModuleDashboard, decision.Target)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRolePermissions", mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestNavigate_PortalBypassesGuard() {
	ctx := context.Background()

	decision := suite.guard.Navigate(ctx, trusteeP, domain.ModuleProfitLoss)

	suite.True(decision.Allowed)
	suite.True(decision.Redirected)
	suite.Equal(domain.ModuleTrusteePortal, decision.Target)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRolePermissions", mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestRequireModule() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleAccountant).Return(accountantPermissions, nil).Twice()

	suite.NoError(suite.guard.RequireModule(ctx, accountant, domain.ModuleProfitLoss))
	suite.ErrorIs(suite.guard.RequireModule(ctx, accountant, domain.ModuleSettings), apperrors.ErrForbidden)
	suite.ErrorIs(suite.guard.RequireModule(ctx, trusteeP, domain.ModuleTrusts), apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestUpdateRolePermissions_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleGeneralManager).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveRolePermissions", ctx, domain.RolePermissions{
		Role:    domain.RoleEngineer,
		CanView: []domain.ModuleTag{domain.ModuleDashboard, domain.ModuleFiles},
	}).Return(nil).Once()
	suite.mockAudit.On("AppendAuditLog", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == "permissions_updated" && e.PrincipalID == gm.ID && e.ID != ""
	})).Return(nil).Once()

	rp, err := suite.service.UpdateRolePermissions(ctx, gm, domain.RoleEngineer, dto.UpdateRolePermissionsRequest{
		CanView: []domain.ModuleTag{domain.ModuleDashboard, domain.ModuleFiles, domain.ModuleDashboard},
	})

	suite.Require().NoError(err)
	suite.Equal([]domain.ModuleTag{domain.ModuleDashboard, domain.ModuleFiles}, rp.CanView)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestUpdateRolePermissions_RejectsPortalRole() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleGeneralManager).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateRolePermissions(ctx, gm, domain.RoleInvestor, dto.UpdateRolePermissionsRequest{
		CanView: []domain.ModuleTag{domain.ModuleDashboard},
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRolePermissions", mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestUpdateRolePermissions_RequiresSettings() {
	ctx := context.Background()
	suite.mockRepo.On("FindRolePermissions", ctx, domain.RoleAccountant).Return(accountantPermissions, nil).Once()

	_, err := suite.service.UpdateRolePermissions(ctx, accountant, domain.RoleAccountant, dto.UpdateRolePermissionsRequest{
		CanView: []domain.ModuleTag{domain.ModuleSettings},
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
