package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/core/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/handlers"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memory.Store
}

func newRouter(cfg *config.Config, store *memory.Store) (*gin.Engine, error) {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}
	router := gin.New()
	container := services.NewServiceContainer(cfg, store.Provider())
	posthogClient := utils.InitializePosthogClient("", "", slog.Default())
	if err := handlers.RegisterRoutes(router, cfg, container, nil, posthogClient); err != nil {
		return nil, err
	}
	return router, nil
}

func testConfig(rateLimit string) *config.Config {
	return &config.Config{
		JWTSecret:             "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:     time.Hour,
		JWTIssuer:             "agency-test",
		LoginRateLimit:        rateLimit,
		ProjectDeletePolicy:   domain.DeleteRestrict,
		DefaultReportCurrency: domain.USD,
	}
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	memory.SeedDemoData(suite.store)
	router, err := newRouter(testConfig("1000-M"), suite.store)
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) login(identifier string) dto.LoginResponse {
	w := suite.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Identifier: identifier, Password: "123456"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *HandlersTestSuite) TestLogin_GeneralManagerLandsOnDashboard() {
	resp := suite.login("admin@noah.com")

	suite.NotEmpty(resp.Token)
	suite.Equal(domain.RoleGeneralManager, resp.Principal.Role)
	suite.Equal(domain.ModuleDashboard, resp.LandingModule)
}

func (suite *HandlersTestSuite) TestLogin_PortalPrincipals() {
	suite.Equal(domain.ModuleEmployeePortal, suite.login("Khaled Carpenter").LandingModule)
	suite.Equal(domain.ModuleTrusteePortal, suite.login("yousef").LandingModule)
	suite.Equal(domain.ModuleClientPortal, suite.login("ahmad").LandingModule)
}

func (suite *HandlersTestSuite) TestLogin_WrongPassword() {
	w := suite.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Identifier: "admin@noah.com", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "invalid credentials")
}

func (suite *HandlersTestSuite) TestLogin_MissingFields() {
	w := suite.do(http.MethodPost, "/auth/login", "", map[string]string{"identifier": "admin@noah.com"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestMe_RequiresToken() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/me", "", nil).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/me", "not-a-jwt", nil).Code)
}

func (suite *HandlersTestSuite) TestLogout_RevokesSession() {
	token := suite.login("accountant@noah.com").Token

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/me", token, nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPost, "/api/v1/auth/logout", token, nil).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/me", token, nil).Code)
}

func (suite *HandlersTestSuite) TestNavigate_EngineerRedirectedFromTransactions() {
	token := suite.login("engineer@noah.com").Token

	w := suite.do(http.MethodGet, "/api/v1/navigate/transactions", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var decision domain.NavigationDecision
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decision))
	suite.False(decision.Allowed)
	suite.True(decision.Redirected)
	suite.Equal(domain.ModuleDashboard, decision.Target)

	w = suite.do(http.MethodGet, "/api/v1/navigate/projects", token, nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decision))
	suite.True(decision.Allowed)
	suite.Equal(domain.ModuleProjects, decision.Target)
}

func (suite *HandlersTestSuite) TestPermissions_SettingsOnly() {
	accountant := suite.login("accountant@noah.com").Token
	w := suite.do(http.MethodGet, "/api/v1/permissions", accountant, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "access denied")

	gm := suite.login("admin@noah.com").Token
	w = suite.do(http.MethodPut, "/api/v1/permissions/Engineer", gm, dto.UpdateRolePermissionsRequest{
		CanView: []domain.ModuleTag{domain.ModuleDashboard, domain.ModuleTransactions},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	engineer := suite.login("engineer@noah.com").Token
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/transactions", engineer, nil).Code)

	w = suite.do(http.MethodGet, "/api/v1/audit-logs", gm, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "permissions_updated")
}

func (suite *HandlersTestSuite) TestPermissions_RejectsPortalModule() {
	gm := suite.login("admin@noah.com").Token
	w := suite.do(http.MethodPut, "/api/v1/permissions/Engineer", gm, map[string]any{
		"canView": []string{"dashboard", "client_portal"},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestProfitAndLoss_Annual2024() {
	token := suite.login("accountant@noah.com").Token

	w := suite.do(http.MethodGet, "/api/v1/reports/profit-loss?year=2024&period=annual&currency=USD", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ProfitLossResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetProfit.Equal(decimal.NewFromInt(23850)), resp.NetProfit.String())
	suite.NotEmpty(resp.Display.NetProfit)
}

func (suite *HandlersTestSuite) TestReports_BadInput() {
	token := suite.login("admin@noah.com").Token

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/reports/expenses?period=q7", token, nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/reports/expenses?currency=EUR", token, nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/reports/daily?date=09-03-2024", token, nil).Code)
}

func (suite *HandlersTestSuite) TestReports_EngineerForbidden() {
	token := suite.login("engineer@noah.com").Token
	w := suite.do(http.MethodGet, "/api/v1/reports/expenses?year=2024", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestRecordTransaction() {
	token := suite.login("accountant@noah.com").Token

	w := suite.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "Payment", "date": "2024-05-02T10:00:00Z", "amount": "0", "currency": "USD",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "Payment", "date": "2024-05-02T10:00:00Z", "amount": "250", "currency": "USD",
		"description": "ضيافة", "projectId": "missing",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "Payment", "date": "2024-05-02T10:00:00Z", "amount": "250", "currency": "USD",
		"description": "ضيافة", "projectId": "General",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var txn domain.Transaction
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &txn))
	suite.NotEmpty(txn.ID)
	suite.Equal(domain.TransactionCompleted, txn.Status)
}

func (suite *HandlersTestSuite) TestListTransactions_Paginates() {
	token := suite.login("accountant@noah.com").Token

	w := suite.do(http.MethodGet, "/api/v1/transactions?currency=USD&limit=4", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Len(page.Transactions, 4)
	suite.Require().NotNil(page.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/transactions?currency=USD&limit=4&nextToken="+*page.NextToken, token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/transactions?nextToken=garbage", token, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestStatements_OwnerOrModule() {
	trustee := suite.login("yousef").Token
	w := suite.do(http.MethodGet, "/api/v1/trustees/t1/statement", trustee, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var statement dto.TrusteeStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &statement))
	suite.True(statement.Balance.Equal(decimal.NewFromInt(-2000)), statement.Balance.String())

	investor := suite.login("nour").Token
	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/investors/i1/statement", investor, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/investors/i2/statement", investor, nil).Code)
	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/trustees/t1/statement", investor, nil).Code)

	gm := suite.login("admin@noah.com").Token
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/trustees/nobody/statement", gm, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/employees/e1/ledger", gm, nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/employees/e2/ledger", gm, nil).Code)
}

func (suite *HandlersTestSuite) TestRecordTrustTransaction_UpdatesBalance() {
	gm := suite.login("admin@noah.com").Token
	w := suite.do(http.MethodPost, "/api/v1/trustees/t1/transactions", gm, map[string]any{
		"type": "Deposit", "amount": "2500", "date": "2024-04-01T09:00:00Z", "description": "Top up",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/trustees/t1/statement", gm, nil)
	var statement dto.TrusteeStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &statement))
	suite.True(statement.Balance.Equal(decimal.NewFromInt(500)), statement.Balance.String())
}

func (suite *HandlersTestSuite) TestDeleteProject_RestrictConflict() {
	gm := suite.login("admin@noah.com").Token
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/api/v1/projects/p1", gm, nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/projects/nope", gm, nil).Code)
}

func (suite *HandlersTestSuite) TestProjectSummary() {
	pm := suite.login("pm@noah.com").Token
	w := suite.do(http.MethodGet, "/api/v1/projects/p2/summary?currency=USD", pm, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), "companyShareDisplay")
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestLogin_RateLimited(t *testing.T) {
	store := memory.NewStore()
	memory.SeedDemoData(store)
	router, err := newRouter(testConfig("2-M"), store)
	if err != nil {
		t.Fatal(err)
	}

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		raw, _ := json.Marshal(dto.LoginRequest{Identifier: "admin@noah.com", Password: "wrong"})
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third login to be rate limited, got %v", codes)
	}
}
