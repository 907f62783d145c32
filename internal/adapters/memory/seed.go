package memory

import (
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DefaultRolePermissions is the permission table a fresh installation starts with.
// The General Manager has no entry and therefore sees every module.
func DefaultRolePermissions() []domain.RolePermissions {
	return []domain.RolePermissions{
		{Role: domain.RoleAccountant, CanView: []domain.ModuleTag{
			domain.ModuleDashboard, domain.ModuleTransactions, domain.ModuleInvoices, domain.ModuleReports,
			domain.ModuleProfitLoss, domain.ModuleTrusts, domain.ModuleInvestors,
		}},
		{Role: domain.RoleProjectManager, CanView: []domain.ModuleTag{
			domain.ModuleDashboard, domain.ModuleProjects, domain.ModuleClients, domain.ModuleFiles, domain.ModuleChat,
		}},
		{Role: domain.RoleEngineer, CanView: []domain.ModuleTag{
			domain.ModuleDashboard, domain.ModuleProjects, domain.ModuleFiles, domain.ModuleChat,
		}},
		{Role: domain.RoleSecretary, CanView: []domain.ModuleTag{
			domain.ModuleDashboard, domain.ModuleClients, domain.ModuleFiles, domain.ModuleChat,
		}},
	}
}

func seedDate(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 10, 0, 0, 0, time.UTC)
}

func usd(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// SeedDemoData loads the demo dataset: one principal per pool, a few projects and
// enough ledger history for every report to show something. All demo passwords
// are 123456.
func SeedDemoData(s *Store) {
	hash := utils.MustHashPassword("123456")
	seededAt := seedDate(time.January, 1)
	audit := domain.AuditFields{CreatedAt: seededAt, CreatedBy: "seed", LastUpdatedAt: seededAt, LastUpdatedBy: "seed"}

	s.AddUser(domain.User{UserID: "u1", Name: "Noah Admin", Email: "admin@noah.com", Role: domain.RoleGeneralManager, PasswordHash: hash})
	s.AddUser(domain.User{UserID: "u2", Name: "Rami Accountant", Email: "accountant@noah.com", Role: domain.RoleAccountant, PasswordHash: hash})
	s.AddUser(domain.User{UserID: "u3", Name: "Lina Manager", Email: "pm@noah.com", Role: domain.RoleProjectManager, PasswordHash: hash})
	s.AddUser(domain.User{UserID: "u4", Name: "Omar Engineer", Email: "engineer@noah.com", Role: domain.RoleEngineer, PasswordHash: hash})
	s.AddUser(domain.User{UserID: "u5", Name: "Sara Secretary", Email: "secretary@noah.com", Role: domain.RoleSecretary, PasswordHash: hash})

	s.AddClient(domain.Client{ID: "c1", Name: "Ahmad Villa Owner", Username: "ahmad", PasswordHash: hash})

	s.AddEmployee(domain.Employee{ID: "e1", Name: "Khaled Carpenter", Type: domain.EmployeeCraftsman, Position: "Carpenter", Username: "khaled", PasswordHash: hash})
	s.AddEmployee(domain.Employee{ID: "e2", Name: "Maya Designer", Type: domain.EmployeeStaff, Position: "Interior Designer", Username: "maya", Email: "maya@noah.com", PasswordHash: hash})

	s.AddTrustee(domain.Trustee{ID: "t1", Name: "Yousef Site Box", Phone: "+963 900 000 001", Username: "yousef", PasswordHash: hash})

	s.AddInvestor(domain.Investor{ID: "i1", Name: "Hadi Capital", Kind: domain.InvestorCapital, ProfitPercentage: usd(10), Username: "hadi", PasswordHash: hash})
	s.AddInvestor(domain.Investor{ID: "i2", Name: "Nour Partner", Kind: domain.InvestorPartner, LinkedProjectIDs: []string{"p2"}, Username: "nour", PasswordHash: hash})

	s.AddProject(domain.Project{ID: "p1", Name: "Mezzeh Apartment Design", ClientName: "Ahmad Villa Owner", Budget: usd(12000),
		Type: domain.ProjectDesign, Status: domain.ProjectInProgress, Progress: 60, AuditFields: audit})
	s.AddProject(domain.Project{ID: "p2", Name: "Yaafour Villa Execution", ClientName: "Ahmad Villa Owner", Budget: usd(90000),
		Type: domain.ProjectExecution, Status: domain.ProjectInProgress, Progress: 35,
		WorkshopBalance: usd(800), WorkshopThreshold: usd(1000),
		CompanyPercentage: usd(15), ContractType: domain.ContractPercentage, AuditFields: audit})
	s.AddProject(domain.Project{ID: "p3", Name: "Old Town Restaurant Supervision", ClientName: "Bab Touma Hospitality", Budget: usd(8000),
		Type: domain.ProjectSupervision, Status: domain.ProjectPlanning, AuditFields: audit})

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rp := range DefaultRolePermissions() {
		s.permissions[rp.Role] = rp
		s.roleOrder = append(s.roleOrder, rp.Role)
	}

	txn := func(id string, typ domain.TransactionType, m time.Month, d int, amount int64, cur domain.Currency, desc, projectID string) domain.Transaction {
		return domain.Transaction{ID: id, Type: typ, Date: seedDate(m, d), Amount: usd(amount), Currency: cur,
			Description: desc, ProjectID: projectID, Status: domain.TransactionCompleted, AuditFields: audit}
	}
	s.transactions = append(s.transactions,
		txn("tx1", domain.Receipt, time.January, 10, 6000, domain.USD, "Design fee first installment", "p1"),
		txn("tx2", domain.Payment, time.January, 15, 1200, domain.USD, "Rendering software licence", "p1"),
		txn("tx3", domain.Receipt, time.February, 3, 30000, domain.USD, "Villa execution advance", "p2"),
		txn("tx4", domain.Payment, time.February, 20, 12000, domain.USD, "Tiles and marble supply", "p2"),
		txn("tx5", domain.Payment, time.January, 31, 2500, domain.USD, "راتب شهر كانون الثاني", ""),
		txn("tx6", domain.Payment, time.February, 1, 800, domain.USD, "إيجار المكتب", domain.GeneralProjectID),
		txn("tx7", domain.Payment, time.February, 12, 150, domain.USD, "ضيافة وتنظيف", ""),
		txn("tx8", domain.Receipt, time.March, 5, 4000, domain.USD, "Supervision retainer", "p3"),
		txn("tx9", domain.Payment, time.March, 9, 2500000, domain.SYP, "تجديد رخصة البلدية", ""),
		txn("tx10", domain.Receipt, time.March, 9, 15000000, domain.SYP, "Local client payment", "p2"),
	)
	craftsmanPayment := txn("tx11", domain.Payment, time.March, 1, 700, domain.USD, "Carpentry advance", "p2")
	craftsmanPayment.RecipientID = "e1"
	craftsmanPayment.RecipientType = domain.RecipientEmployee
	s.transactions = append(s.transactions, craftsmanPayment)

	s.invoices = append(s.invoices,
		domain.Invoice{ID: "inv1", ProjectID: "p2", Amount: usd(1500), Date: seedDate(time.February, 25), Category: "Carpentry",
			Description: "Kitchen cabinets", Status: domain.InvoicePending, RelatedEmployeeID: "e1", AuditFields: audit},
		domain.Invoice{ID: "inv2", ProjectID: "p1", Amount: usd(300), Date: seedDate(time.January, 20), Category: "Printing",
			Description: "Plan printing", Status: domain.InvoicePaid, AuditFields: audit},
	)

	s.trustTxns = append(s.trustTxns,
		domain.TrustTransaction{ID: "tt1", TrusteeID: "t1", Type: domain.TrustDeposit, Amount: usd(1000), Date: seedDate(time.February, 1), Description: "Site petty cash"},
		domain.TrustTransaction{ID: "tt2", TrusteeID: "t1", Type: domain.TrustWithdrawal, Amount: usd(3000), Date: seedDate(time.February, 18), Description: "Urgent cement purchase"},
	)

	s.investorTxns = append(s.investorTxns,
		domain.InvestorTransaction{ID: "it1", InvestorID: "i1", Type: domain.CapitalInjection, Amount: usd(50000), Date: seedDate(time.January, 5)},
		domain.InvestorTransaction{ID: "it2", InvestorID: "i1", Type: domain.ProfitDistribution, Amount: usd(2000), Date: seedDate(time.March, 30)},
		domain.InvestorTransaction{ID: "it3", InvestorID: "i2", Type: domain.CapitalInjection, Amount: usd(20000), Date: seedDate(time.February, 2)},
		domain.InvestorTransaction{ID: "it4", InvestorID: "i2", Type: domain.InvestorWithdrawal, Amount: usd(5000), Date: seedDate(time.March, 15)},
	)
}
