package calculations

import (
	"github.com/shopspring/decimal"
)

const (
	CheaperAnnuity        = "annuity"
	CheaperDifferentiated = "differentiated"
	CheaperEqual          = "equal"
)

// CompareLoans сравнивает аннуитетный и дифференцированный кредиты на одних и тех же параметрах
func CompareLoans(input LoanInput) ComparisonResult {
	annuity := CalculateAnnuityLoan(input)
	differentiated := CalculateDifferentiatedLoan(input)

	totalPaidDiff := decimal.NewFromFloat(annuity.TotalPayments).Sub(decimal.NewFromFloat(differentiated.TotalPayments)).Round(2)
	interestDiff := decimal.NewFromFloat(annuity.TotalInterest).Sub(decimal.NewFromFloat(differentiated.TotalInterest)).Round(2)

	// Определяем, какой кредит выгоднее
	cheaper := CheaperEqual
	switch totalPaidDiff.Sign() {
	case 1:
		cheaper = CheaperDifferentiated
	case -1:
		cheaper = CheaperAnnuity
	}

	return ComparisonResult{
		Annuity:        annuity,
		Differentiated: differentiated,
		TotalPaidDiff:  totalPaidDiff.InexactFloat64(),
		InterestDiff:   interestDiff.InexactFloat64(),
		CheaperType:    cheaper,
		Savings:        totalPaidDiff.Abs().InexactFloat64(),
	}
}
