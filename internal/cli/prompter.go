package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"github.com/go-playground/validator/v10"
)

// Prompter is the interactive terminal input provider. Every method keeps
// asking until the answer is within its domain, so callers only ever see
// valid values or a read error.
type Prompter struct {
	reader   *LineReader
	writer   io.Writer
	validate *validator.Validate
}

// NewPrompter creates a prompter reading answers from reader and writing
// questions to writer. Nil arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader:   NewLineReader(reader),
		writer:   writer,
		validate: validator.New(),
	}
}

// EmploymentStatus asks for the applicant's employment status.
func (p *Prompter) EmploymentStatus(ctx context.Context) (model.EmploymentStatus, error) {
	p.println("\nEmployment Status:")
	p.println("  [1] Salaried")
	p.println("  [2] Self-Employed")
	p.println("  [3] Unemployed")

	choice, err := p.promptMenu(ctx, "Choose (1-3)", 3)
	if err != nil {
		return 0, err
	}
	return model.ParseEmploymentStatus(choice)
}

// NewBusiness asks whether the loan is for a new business.
func (p *Prompter) NewBusiness(ctx context.Context) (bool, error) {
	return p.promptYesNo(ctx, "Is this for a new business?")
}

// BusinessType asks for the kind of new business.
func (p *Prompter) BusinessType(ctx context.Context) (model.BusinessType, error) {
	p.println("\nBusiness Type:")
	p.println("  [1] Manufacturing")
	p.println("  [2] Other")

	choice, err := p.promptMenu(ctx, "Choose (1-2)", 2)
	if err != nil {
		return 0, err
	}
	return model.ParseBusinessType(choice)
}

// PlannedInvestment asks for the planned investment of a manufacturing business.
func (p *Prompter) PlannedInvestment(ctx context.Context) (float64, error) {
	return p.promptAmount(ctx, "Enter planned investment (₹)", "gte=0",
		"Please enter an investment of ₹0 or more")
}

// AnnualIncome asks for the applicant's annual income.
func (p *Prompter) AnnualIncome(ctx context.Context) (float64, error) {
	return p.promptAmount(ctx, "Enter annual income (₹)", "gt=0",
		"Please enter an income greater than ₹0")
}

// CreditScore asks for the applicant's credit score.
func (p *Prompter) CreditScore(ctx context.Context) (int, error) {
	return p.promptInt(ctx, "Enter credit score (300-900)", "min=300,max=900",
		"Credit score must be between 300 and 900")
}

// LoanAmount shows the available range and asks for the desired amount.
// The range itself is enforced by the engine.
func (p *Prompter) LoanAmount(ctx context.Context, bounds model.LoanBounds) (float64, error) {
	prompt := fmt.Sprintf("Enter desired amount (%s - %s)",
		FormatRupees(bounds.MinAmount), FormatRupees(bounds.MaxAmount))
	return p.promptAmount(ctx, prompt, "gt=0", "Please enter an amount greater than ₹0")
}

// Tenure asks for the loan tenure in years.
func (p *Prompter) Tenure(ctx context.Context, minYears, maxYears int) (int, error) {
	prompt := fmt.Sprintf("Enter tenure in years (%d-%d)", minYears, maxYears)
	return p.promptInt(ctx, prompt, fmt.Sprintf("min=%d,max=%d", minYears, maxYears),
		fmt.Sprintf("Tenure must be between %d and %d years", minYears, maxYears))
}

// RepaymentFrequency asks how often the applicant wants to pay.
func (p *Prompter) RepaymentFrequency(ctx context.Context) (model.RepaymentFrequency, error) {
	p.println("\nRepayment Frequency:")
	p.println("  [1] Monthly")
	p.println("  [2] Quarterly")
	p.println("  [3] Annual")

	choice, err := p.promptMenu(ctx, "Choose (1-3)", 3)
	if err != nil {
		return 0, err
	}
	return model.ParseRepaymentFrequency(choice)
}

// TermsRejected explains why requested terms were refused.
func (p *Prompter) TermsRejected(_ context.Context, err error) error {
	if _, writeErr := fmt.Fprintln(p.writer, FormatError(capitalize(err.Error())+". Please try again.")); writeErr != nil {
		return fmt.Errorf("failed to write terms error: %w", writeErr)
	}
	return nil
}

func (p *Prompter) println(line string) {
	if _, err := fmt.Fprintln(p.writer, line); err != nil {
		slog.Warn("Failed to write prompt text", "error", err)
	}
}

func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintf(p.writer, "%s ", FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return p.reader.ReadLine(ctx)
}

func (p *Prompter) retry(message string) {
	if _, err := fmt.Fprintln(p.writer, FormatError(message)); err != nil {
		slog.Warn("Failed to write error message", "error", err)
	}
}

func (p *Prompter) promptMenu(ctx context.Context, prompt string, options int) (int, error) {
	return p.promptInt(ctx, prompt, fmt.Sprintf("min=1,max=%d", options), "Invalid choice. Please try again.")
}

func (p *Prompter) promptInt(ctx context.Context, prompt, rule, invalidMessage string) (int, error) {
	for {
		input, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(input)
		if err != nil {
			p.retry("Please enter a whole number.")
			continue
		}

		if err := p.validate.Var(value, rule); err != nil {
			p.retry(invalidMessage)
			continue
		}

		return value, nil
	}
}

func (p *Prompter) promptAmount(ctx context.Context, prompt, rule, invalidMessage string) (float64, error) {
	for {
		input, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := parseAmount(input)
		if err != nil {
			p.retry("Please enter a valid amount (numbers only, commas and ₹ are optional)")
			continue
		}

		if err := p.validate.Var(value, rule); err != nil {
			p.retry(invalidMessage)
			continue
		}

		return value, nil
	}
}

func (p *Prompter) promptYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		input, err := p.ask(ctx, prompt+" [y/n]")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "y", "yes", "1":
			return true, nil
		case "n", "no", "0":
			return false, nil
		}

		p.retry("Please answer y or n.")
	}
}

var errEmptyAmount = errors.New("empty amount")

// parseAmount accepts plain numbers as well as "₹12,50,000" style input.
func parseAmount(input string) (float64, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(input), "₹")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, errEmptyAmount
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("amount %q is not a finite number", input)
	}
	return value, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
