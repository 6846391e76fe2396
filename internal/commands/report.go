package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
	"github.com/fiskal-dev/fiskal/internal/reports"
	"github.com/fiskal-dev/fiskal/internal/store"
)

func newReportCommand() *cobra.Command {
	var repoDir string
	var year, quarter, month int

	cmd := &cobra.Command{
		Use:       "report <bwa|euer|ustva|susa|zm>",
		Short:     "Build a report from the recorded bookings",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bwa", "euer", "ustva", "susa", "zm"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			p := period.Year(year)
			if quarter != 0 {
				p = period.Quarter(year, quarter)
			} else if month != 0 {
				p = period.Month(year, month)
			}
			if err := p.Validate(); err != nil {
				return err
			}

			records, err := store.NewService(repoDir).ReadYear(year)
			if err != nil {
				return err
			}

			return runReport(args[0], p, records)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().IntVar(&year, "year", 0, "report year (default: current)")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "quarter 1-4")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12")

	return cmd
}

func runReport(kind string, p period.Period, records []model.LedgerRecord) error {
	switch kind {
	case "bwa":
		printBWA(reports.BuildBWA(p.Year, records))
	case "euer":
		printEUeR(reports.BuildEUeR(p.Year, records))
	case "ustva":
		ustva, err := reports.BuildUStVA(p, records)
		if err != nil {
			return err
		}
		printUStVA(ustva)
	case "susa":
		printSuSa(reports.BuildSuSa(p, reports.BalancesFromRecords(p, records)))
	case "zm":
		printZM(reports.BuildZM(p, records))
	default:
		return fmt.Errorf("unknown report %q", kind)
	}
	return nil
}

func printBWA(bwa reports.BWA) {
	if bwa.NoData {
		fmt.Printf("BWA %d: no records\n", bwa.Year)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "BWA %d\tEinnahmen\tAusgaben\tErgebnis\tMarge %%\n", bwa.Year)
	for m, row := range bwa.Months {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			time.Month(m+1),
			row.TotalIncome.StringFixed(2),
			row.TotalExpense.StringFixed(2),
			row.Profit.StringFixed(2),
			row.MarginPct.StringFixed(1))
	}
	fmt.Fprintf(w, "Gesamt\t%s\t%s\t%s\t%s\n",
		bwa.Total.TotalIncome.StringFixed(2),
		bwa.Total.TotalExpense.StringFixed(2),
		bwa.Total.Profit.StringFixed(2),
		bwa.Total.MarginPct.StringFixed(1))
	w.Flush()
}

func printEUeR(euer reports.EUeR) {
	if euer.NoData {
		fmt.Printf("EÜR %d: no records\n", euer.Year)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "EÜR %d\t\n", euer.Year)
	for _, line := range euer.IncomeLines {
		fmt.Fprintf(w, "Zeile %d\t%s\n", line.Line, line.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "Betriebseinnahmen\t%s\n", euer.TotalIncome.StringFixed(2))
	for _, line := range euer.ExpenseLines {
		fmt.Fprintf(w, "Zeile %d\t%s\n", line.Line, line.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "Betriebsausgaben\t%s\n", euer.TotalExpense.StringFixed(2))
	fmt.Fprintf(w, "Gewinn\t%s\n", euer.Gewinn.StringFixed(2))
	w.Flush()
}

func printUStVA(ustva reports.UStVA) {
	if ustva.NoData {
		fmt.Printf("USt-VA %s: no records\n", ustva.Period.Key())
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "USt-VA %s\tNetto\tUSt\n", ustva.Period.Key())
	for _, sum := range ustva.Umsatzsteuer {
		fmt.Fprintf(w, "Umsätze %d%%\t%s\t%s\n", sum.Rate, sum.Net.StringFixed(2), sum.Vat.StringFixed(2))
	}
	fmt.Fprintf(w, "Umsatzsteuer\t\t%s\n", ustva.TotalUmsatzsteuer.StringFixed(2))
	fmt.Fprintf(w, "Vorsteuer\t\t%s\n", ustva.Vorsteuer.StringFixed(2))
	label := "Zahllast"
	if ustva.Zahllast.IsNegative() {
		label = "Erstattung"
	}
	fmt.Fprintf(w, "%s\t\t%s\n", label, ustva.Zahllast.Abs().StringFixed(2))
	w.Flush()
}

func printSuSa(susa reports.SuSa) {
	if susa.Empty {
		fmt.Printf("SuSa %s: no active accounts\n", susa.Period.Key())
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "SuSa %s\tSoll\tHaben\tSaldo\n", susa.Period.Key())
	for _, group := range susa.Groups {
		fmt.Fprintf(w, "%s\t\t\t\n", group.Group.Label())
		for _, row := range group.Rows {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				row.Account, row.Debit.StringFixed(2), row.Credit.StringFixed(2), row.Balance.StringFixed(2))
		}
		fmt.Fprintf(w, "  Summe\t%s\t%s\t%s\n",
			group.Debit.StringFixed(2), group.Credit.StringFixed(2), group.Balance.StringFixed(2))
	}
	fmt.Fprintf(w, "Gesamt\t%s\t%s\t%s\n",
		susa.TotalDebit.StringFixed(2), susa.TotalCredit.StringFixed(2), susa.TotalBalance.StringFixed(2))
	w.Flush()
}

func printZM(zm reports.ZM) {
	if zm.NoData {
		fmt.Printf("ZM %s: no EU sales\n", zm.Period.Key())
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ZM %s\tBetrag\n", zm.Period.Key())
	for _, entry := range zm.Entries {
		fmt.Fprintf(w, "%s\t%s\n", entry.VatID, entry.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "Gesamt (%d)\t%s\n", zm.Count, zm.Total.StringFixed(2))
	w.Flush()
}
