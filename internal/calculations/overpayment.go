package calculations

import (
	"github.com/shopspring/decimal"
)

// CalculateLoanOverpayment рассчитывает переплату по кредиту
func CalculateLoanOverpayment(input LoanInput) OverpaymentResult {
	months, financed := ResolveTerm(input)
	loan := CalculateLoan(input)

	overpayment := decimal.NewFromFloat(loan.TotalInterest)
	var percent decimal.Decimal
	if financed.IsPositive() {
		percent = overpayment.Div(financed).Mul(percentMultiplier).Round(2)
	}
	totalCost := decimal.NewFromFloat(input.LoanAmount).Add(overpayment)

	return OverpaymentResult{
		LoanAmount:         input.LoanAmount,
		FinancedPrincipal:  financed.InexactFloat64(),
		TermMonths:         months,
		InterestRate:       input.InterestRate,
		DownPayment:        input.DownPayment,
		MonthlyPayment:     loan.MonthlyPayment,
		TotalPayments:      loan.TotalPayments,
		TotalInterest:      loan.TotalInterest,
		EffectiveTerm:      loan.EffectiveTerm,
		OverpaymentAmount:  loan.TotalInterest,
		OverpaymentPercent: percent.InexactFloat64(),
		TotalCost:          totalCost.InexactFloat64(),
		PrincipalPaid:      financed.InexactFloat64(),
		InterestPaid:       loan.TotalInterest,
	}
}
