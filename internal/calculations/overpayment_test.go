package calculations

import (
	"math"
	"testing"
)

func TestCalculateLoanOverpayment(t *testing.T) {
	input := baseInput()
	input.DownPayment = 20000

	result := CalculateLoanOverpayment(input)
	loan := CalculateLoan(input)

	if result.FinancedPrincipal != 80000 {
		t.Errorf("expected financed principal 80000, got %f", result.FinancedPrincipal)
	}
	if result.TermMonths != 60 {
		t.Errorf("expected 60 months, got %d", result.TermMonths)
	}
	if result.OverpaymentAmount != loan.TotalInterest {
		t.Errorf("overpayment %f should equal total interest %f", result.OverpaymentAmount, loan.TotalInterest)
	}
	wantPercent := loan.TotalInterest / 80000 * 100
	if math.Abs(result.OverpaymentPercent-wantPercent) > 0.01 {
		t.Errorf("expected overpayment percent %f, got %f", wantPercent, result.OverpaymentPercent)
	}
	if math.Abs(result.TotalCost-(100000+loan.TotalInterest)) > 0.001 {
		t.Errorf("unexpected total cost %f", result.TotalCost)
	}
	if result.InterestPaid != result.OverpaymentAmount {
		t.Errorf("interest paid %f != overpayment %f", result.InterestPaid, result.OverpaymentAmount)
	}
}

func TestCalculateLoanOverpaymentZeroRate(t *testing.T) {
	input := baseInput()
	input.InterestRate = 0

	result := CalculateLoanOverpayment(input)
	if result.OverpaymentAmount != 0 || result.OverpaymentPercent != 0 {
		t.Errorf("expected no overpayment, got %f (%f%%)", result.OverpaymentAmount, result.OverpaymentPercent)
	}
	if result.TotalCost != 100000 {
		t.Errorf("expected total cost 100000, got %f", result.TotalCost)
	}
}
