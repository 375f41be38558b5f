package calculations

import (
	"github.com/shopspring/decimal"
)

// AnnuityPayment рассчитывает базовый аннуитетный платеж без округления до копеек
func AnnuityPayment(principal decimal.Decimal, annualRatePercent float64, months int) decimal.Decimal {
	if annualRatePercent == 0 {
		return principal.DivRound(decimal.NewFromInt(int64(months)), ledgerPrecision)
	}

	// P * r * (1+r)^n / ((1+r)^n - 1)
	r := monthlyRate(annualRatePercent)
	factor := compound(one.Add(r), months)
	return principal.Mul(r).Mul(factor).DivRound(factor.Sub(one), ledgerPrecision)
}

// compound возводит base в степень months
func compound(base decimal.Decimal, months int) decimal.Decimal {
	factor := one
	for i := 0; i < months; i++ {
		factor = factor.Mul(base).Round(ledgerPrecision)
	}
	return factor
}

// CalculateAnnuityLoan рассчитывает график аннуитетного кредита независимо от input.PaymentType
func CalculateAnnuityLoan(input LoanInput) LoanResult {
	months, principal := ResolveTerm(input)
	r := monthlyRate(input.InterestRate)
	extra := decimal.NewFromFloat(input.AdditionalPayment)

	base := AnnuityPayment(principal, input.InterestRate, months)
	scheduled := base.Add(extra)

	l := newLedger(months)
	balance := principal
	for month := 1; month <= months && balance.IsPositive(); month++ {
		interest := interestOn(balance, r)
		principalPart := principalThisMonth(scheduled.Sub(interest), balance, month, months)
		balance = balance.Sub(principalPart)
		l.add(month, interest, principalPart, balance)
	}

	return l.result(scheduled)
}
