package calculations

import (
	"github.com/shopspring/decimal"
)

// CalculateDifferentiatedLoan рассчитывает график дифференцированного кредита независимо от input.PaymentType
func CalculateDifferentiatedLoan(input LoanInput) LoanResult {
	months, principal := ResolveTerm(input)
	r := monthlyRate(input.InterestRate)
	extra := decimal.NewFromFloat(input.AdditionalPayment)

	// Основной долг гасится равными частями
	scheduled := principal.DivRound(decimal.NewFromInt(int64(months)), ledgerPrecision).Add(extra)

	l := newLedger(months)
	balance := principal
	firstPayment := decimal.Zero
	for month := 1; month <= months && balance.IsPositive(); month++ {
		interest := interestOn(balance, r)
		principalPart := principalThisMonth(scheduled, balance, month, months)
		balance = balance.Sub(principalPart)
		payment := l.add(month, interest, principalPart, balance)
		if month == 1 {
			firstPayment = payment
		}
	}

	return l.result(firstPayment)
}
