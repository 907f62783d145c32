package services_test

import (
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/core/services"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

func testConfig(policy domain.ProjectDeletePolicy) *config.Config {
	return &config.Config{
		JWTSecret:             "test-secret",
		JWTExpiryDuration:     time.Hour,
		JWTIssuer:             "agency-test",
		ProjectDeletePolicy:   policy,
		DefaultReportCurrency: domain.USD,
	}
}

// newSeededContainer wires every service over a store loaded with the demo dataset.
func newSeededContainer(policy domain.ProjectDeletePolicy) (*memory.Store, *portssvc.ServiceContainer) {
	store := memory.NewStore()
	memory.SeedDemoData(store)
	return store, services.NewServiceContainer(testConfig(policy), store.Provider())
}

func amount(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
