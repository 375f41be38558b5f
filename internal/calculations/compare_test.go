package calculations

import (
	"math"
	"testing"
)

func TestCompareLoans(t *testing.T) {
	result := CompareLoans(baseInput())

	if result.CheaperType != CheaperDifferentiated {
		t.Errorf("expected differentiated to be cheaper, got %s", result.CheaperType)
	}
	if result.Savings <= 0 {
		t.Errorf("expected positive savings, got %f", result.Savings)
	}
	diff := result.Annuity.TotalPayments - result.Differentiated.TotalPayments
	if math.Abs(result.TotalPaidDiff-diff) > 0.001 {
		t.Errorf("expected total paid diff %f, got %f", diff, result.TotalPaidDiff)
	}
	if result.Savings != result.TotalPaidDiff {
		t.Errorf("savings %f should equal total paid diff %f", result.Savings, result.TotalPaidDiff)
	}
}

func TestCompareLoansZeroRate(t *testing.T) {
	input := baseInput()
	input.LoanAmount = 120000
	input.InterestRate = 0

	result := CompareLoans(input)
	if result.CheaperType != CheaperEqual {
		t.Errorf("expected equal, got %s", result.CheaperType)
	}
	if result.Savings != 0 {
		t.Errorf("expected no savings, got %f", result.Savings)
	}
}
