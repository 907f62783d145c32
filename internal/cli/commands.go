package cli

import (
	"fmt"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/spf13/cobra"
)

func newLoginCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Resolve the --as credentials and show where the principal lands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.actor(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd, dto.MeResponse{Principal: p, LandingModule: p.LandingModule()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) -> %s\n", p.Name, p.Role, p.LandingModule())
			return nil
		},
	}
}

func newNavigateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "navigate MODULE",
		Short: "Ask the route guard where the principal lands for MODULE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.actor(cmd.Context())
			if err != nil {
				return err
			}
			decision := a.container.RouteGuard.Navigate(cmd.Context(), p, domain.ModuleTag(args[0]))
			if a.asJSON {
				return a.printJSON(cmd, decision)
			}
			verdict := "allowed"
			if decision.Redirected {
				verdict = "denied, redirected"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", decision.Requested, verdict, decision.Target)
			return nil
		},
	}
}

type reportFlags struct {
	year     int
	period   string
	currency string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.year, "year", 0, "Fiscal year (default: current year)")
	cmd.Flags().StringVar(&f.period, "period", "annual", "annual, q1..q4 or m1..m12")
	cmd.Flags().StringVar(&f.currency, "currency", "", "Ledger currency (default: DEFAULT_REPORT_CURRENCY)")
}

func newReportCommand(a *app) *cobra.Command {
	report := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}

	var plFlags reportFlags
	profitLoss := &cobra.Command{
		Use:   "profit-loss",
		Short: "Project gross profit, operating expenses and net profit for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.actor(cmd.Context())
			if err != nil {
				return err
			}
			period, err := domain.ParseReportPeriod(plFlags.period)
			if err != nil {
				return err
			}
			r, err := a.container.Reporting.ProfitAndLoss(cmd.Context(), p, plFlags.year, period, domain.Currency(plFlags.currency))
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd, dto.ToProfitLossResponse(r))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profit and loss %d %s (%s)\n", r.Year, r.Period, r.Currency)
			for _, pp := range r.Projects {
				fmt.Fprintf(out, "  %-30s %s\n", pp.ProjectName, utils.FormatCurrency(pp.PeriodProfit, r.Currency))
			}
			fmt.Fprintf(out, "Gross profit        %s\n", utils.FormatCurrency(r.TotalProjectGrossProfit, r.Currency))
			fmt.Fprintf(out, "Operating expenses  %s\n", utils.FormatCurrency(r.OperatingExpenses, r.Currency))
			fmt.Fprintf(out, "Net profit          %s\n", utils.FormatCurrency(r.NetProfit, r.Currency))
			return nil
		},
	}
	plFlags.register(profitLoss)

	var exFlags reportFlags
	expenses := &cobra.Command{
		Use:   "expenses",
		Short: "Operating expenses by category for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.actor(cmd.Context())
			if err != nil {
				return err
			}
			period, err := domain.ParseReportPeriod(exFlags.period)
			if err != nil {
				return err
			}
			b, err := a.container.Reporting.ExpenseReport(cmd.Context(), p, exFlags.year, period, domain.Currency(exFlags.currency))
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd, dto.ToExpenseReportResponse(b))
			}
			out := cmd.OutOrStdout()
			for _, bucket := range b.Breakdown {
				fmt.Fprintf(out, "  %-20s %4d  %s\n", bucket.Category, bucket.Count, utils.FormatCurrency(bucket.TotalAmount, b.Currency))
			}
			fmt.Fprintf(out, "Total               %s\n", utils.FormatCurrency(b.TotalOpEx, b.Currency))
			return nil
		},
	}
	exFlags.register(expenses)

	report.AddCommand(profitLoss, expenses)
	return report
}

func newBalanceCommand(a *app) *cobra.Command {
	balance := &cobra.Command{
		Use:   "balance",
		Short: "Trustee, investor and craftsman balances",
	}

	balance.AddCommand(
		&cobra.Command{
			Use:   "trustee TRUSTEE_ID",
			Short: "Trust box balance (deposits minus withdrawals)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.actor(cmd.Context())
				if err != nil {
					return err
				}
				s, err := a.container.Ledger.GetTrusteeStatement(cmd.Context(), p, args[0])
				if err != nil {
					return err
				}
				resp := dto.ToTrusteeStatementResponse(s)
				if a.asJSON {
					return a.printJSON(cmd, resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], resp.Display.Formatted)
				return nil
			},
		},
		&cobra.Command{
			Use:   "investor INVESTOR_ID",
			Short: "Investor account balance",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.actor(cmd.Context())
				if err != nil {
					return err
				}
				s, err := a.container.Ledger.GetInvestorStatement(cmd.Context(), p, args[0])
				if err != nil {
					return err
				}
				resp := dto.ToInvestorStatementResponse(s)
				if a.asJSON {
					return a.printJSON(cmd, resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], resp.Display.Formatted)
				return nil
			},
		},
		&cobra.Command{
			Use:   "craftsman EMPLOYEE_ID",
			Short: "Craftsman ledger balance (invoices minus payments)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.actor(cmd.Context())
				if err != nil {
					return err
				}
				l, err := a.container.Ledger.GetCraftsmanLedger(cmd.Context(), p, args[0])
				if err != nil {
					return err
				}
				resp := dto.ToCraftsmanLedgerResponse(l)
				if a.asJSON {
					return a.printJSON(cmd, resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], resp.Display.Formatted)
				return nil
			},
		},
	)
	return balance
}
