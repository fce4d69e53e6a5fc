package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/smart-loan-advisor/internal/config"
	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Reporter renders assessment outcomes to the terminal.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a reporter writing to w, or stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{writer: w}
}

// Banner prints the application header.
func (r *Reporter) Banner() error {
	return r.write(FormatTitle("Smart Loan Advisor (₹)"))
}

// ReportRejection lists every reason the application was refused.
func (r *Reporter) ReportRejection(_ context.Context, result model.AssessmentResult) error {
	lines := make([]string, 0, len(result.RejectionReasons))
	for _, reason := range result.RejectionReasons {
		lines = append(lines, ErrorStyle.Render(ErrorIcon+" "+reason))
	}

	if err := r.write(RenderBox("Application Rejected", strings.Join(lines, "\n"))); err != nil {
		return err
	}
	return r.writeSchemes(result.Schemes)
}

// ReportEligibility shows the approved range and rate, plus any special
// provisions and schemes, before terms are requested.
func (r *Reporter) ReportEligibility(_ context.Context, result model.AssessmentResult) error {
	if result.Track == model.TrackManufacturing {
		if err := r.write(WarningStyle.Render(StarIcon + " Special Manufacturing Package Activated " + StarIcon)); err != nil {
			return err
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		FormatField("Track", formatTrack(result.Track)),
		FormatField("Interest rate", FormatRate(result.Bounds.InterestRate)),
		FormatField("Loan range", FormatRupees(result.Bounds.MinAmount)+" - "+FormatRupees(result.Bounds.MaxAmount)),
	)
	if err := r.write(RenderBox(SuccessIcon+" Eligible", content)); err != nil {
		return err
	}

	if len(result.Provisions) > 0 {
		lines := make([]string, 0, len(result.Provisions))
		for _, provision := range result.Provisions {
			lines = append(lines, "- "+provision)
		}
		if err := r.write(RenderBox(FactoryIcon+" Special Provisions", strings.Join(lines, "\n"))); err != nil {
			return err
		}
	}

	return r.writeSchemes(result.Schemes)
}

// ReportOffer shows the final repayment figures.
func (r *Reporter) ReportOffer(_ context.Context, result model.AssessmentResult) error {
	if result.Offer == nil {
		return fmt.Errorf("no offer to report")
	}
	offer := result.Offer
	terms := offer.Terms

	fields := []string{
		FormatField("Amount", FormatRupees(terms.Amount)),
		FormatField("Interest rate", FormatRate(terms.InterestRate)),
		FormatField("Tenure", FormatTenure(terms.TenureYears)),
		FormatField("EMI", FormatRupees(offer.EMI)+"/month"),
	}
	if terms.Frequency != model.Monthly {
		fields = append(fields, FormatField(terms.Frequency.String()+" payment", FormatRupees(offer.PeriodicPayment)))
	}
	fields = append(fields,
		FormatField("Total interest", FormatRupees(offer.TotalInterest)),
		FormatField("Total payable", FormatRupees(offer.TotalPayable)),
	)

	return r.write(RenderBox(BankIcon+" Loan Offer", lipgloss.JoinVertical(lipgloss.Left, fields...)))
}

// ReportSchedule prints a year-by-year summary of an amortization schedule.
func (r *Reporter) ReportSchedule(installments []model.Installment) error {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		TableCellStyle.Width(6).Render("Year"),
		TableCellStyle.Render("Paid"),
		TableCellStyle.Render("Principal"),
		TableCellStyle.Render("Interest"),
		TableCellStyle.Render("Balance"),
	)
	rows := []string{TableHeaderStyle.Render(header)}

	for _, year := range summarizeByYear(installments) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			TableCellStyle.Width(6).Render(fmt.Sprintf("%d", year.Month/12)),
			TableCellStyle.Render(FormatRupees(year.Payment)),
			TableCellStyle.Render(FormatRupees(year.Principal)),
			TableCellStyle.Render(FormatRupees(year.Interest)),
			TableCellStyle.Render(FormatRupees(year.Balance)),
		))
	}

	return r.write(strings.Join(rows, "\n"))
}

// ReportPolicy prints the active rule table.
func (r *Reporter) ReportPolicy(policy config.Policy) error {
	content := lipgloss.JoinVertical(lipgloss.Left,
		FormatField("Salaried", fmt.Sprintf("income ≥ %s, score ≥ %d, %s, %.0fx income",
			FormatRupees(policy.SalariedIncomeFloor), policy.SalariedCreditFloor,
			FormatRate(policy.SalariedRate), policy.SalariedIncomeMultiple)),
		FormatField("Self-employed", fmt.Sprintf("income ≥ %s, score ≥ %d, %s, %.0fx income",
			FormatRupees(policy.SelfEmployedIncomeFloor), policy.SelfEmployedCreditFloor,
			FormatRate(policy.SelfEmployedRate), policy.SelfEmployedIncomeMultiple)),
		FormatField("Manufacturing", fmt.Sprintf("investment ≥ %s, %s, up to %s",
			FormatRupees(policy.ManufacturingMinInvestment), FormatRate(policy.ManufacturingRate),
			FormatRupees(policy.ManufacturingLoanCeiling))),
		FormatField("Minimum loan", FormatRupees(policy.MinLoanAmount)),
		FormatField("General ceiling", FormatRupees(policy.GeneralLoanCeiling)),
		FormatField("New business ceiling", FormatRupees(policy.NewBusinessLoanCeiling)),
		FormatField("Tenure", fmt.Sprintf("%d-%d years", policy.MinTenureYears, policy.MaxTenureYears)),
	)
	return r.write(RenderBox("Loan Policy", content))
}

func (r *Reporter) writeSchemes(schemes []model.Scheme) error {
	if len(schemes) == 0 {
		return nil
	}

	lines := make([]string, 0, len(schemes))
	for _, scheme := range schemes {
		lines = append(lines, "- "+ValueStyle.Render(scheme.Name)+": "+scheme.Description)
	}
	return r.write(RenderBox("Government Schemes", strings.Join(lines, "\n")))
}

func (r *Reporter) write(s string) error {
	if _, err := fmt.Fprintln(r.writer, s); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// summarizeByYear folds monthly installments into one row per year. Month
// holds the last month of the year and Balance the closing balance.
func summarizeByYear(installments []model.Installment) []model.Installment {
	years := make([]model.Installment, 0, len(installments)/12+1)
	for _, inst := range installments {
		idx := (inst.Month - 1) / 12
		if idx == len(years) {
			years = append(years, model.Installment{})
		}
		year := &years[idx]
		year.Month = inst.Month
		year.Payment += inst.Payment
		year.Principal += inst.Principal
		year.Interest += inst.Interest
		year.Balance = inst.Balance
	}
	return years
}
