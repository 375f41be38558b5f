package calculations

import (
	"github.com/shopspring/decimal"
)

// ledgerPrecision число знаков после запятой во всех промежуточных суммах графика
const ledgerPrecision = 28

var (
	one                = decimal.NewFromInt(1)
	monthsPerYear      = decimal.NewFromInt(12)
	percentMultiplier  = decimal.NewFromInt(100)
	monthlyRateDivisor = percentMultiplier.Mul(monthsPerYear)
)

// ResolveTerm переводит срок в месяцы и вычитает первоначальный взнос из суммы кредита.
// Входные данные должны быть предварительно проверены validators.ValidateLoanInput.
func ResolveTerm(input LoanInput) (int, decimal.Decimal) {
	months := input.TermYears*12 + input.TermMonths
	financed := decimal.NewFromFloat(input.LoanAmount).Sub(decimal.NewFromFloat(input.DownPayment))
	return months, financed
}

// monthlyRate возвращает месячную ставку в долях
func monthlyRate(annualRatePercent float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRatePercent).DivRound(monthlyRateDivisor, ledgerPrecision)
}

// ledger накапливает график платежей без округления до копеек
type ledger struct {
	schedule      []ScheduleEntry
	totalPaid     decimal.Decimal
	totalInterest decimal.Decimal
}

func newLedger(months int) *ledger {
	return &ledger{schedule: make([]ScheduleEntry, 0, months)}
}

func (l *ledger) add(month int, interest, principal, balance decimal.Decimal) decimal.Decimal {
	payment := interest.Add(principal)
	l.totalPaid = l.totalPaid.Add(payment)
	l.totalInterest = l.totalInterest.Add(interest)
	l.schedule = append(l.schedule, ScheduleEntry{
		Month:     month,
		Payment:   payment.InexactFloat64(),
		Interest:  interest.InexactFloat64(),
		Principal: principal.InexactFloat64(),
		Balance:   balance.InexactFloat64(),
	})
	return payment
}

func (l *ledger) result(monthlyPayment decimal.Decimal) LoanResult {
	return LoanResult{
		MonthlyPayment:  monthlyPayment.InexactFloat64(),
		TotalPayments:   l.totalPaid.InexactFloat64(),
		TotalInterest:   l.totalInterest.InexactFloat64(),
		EffectiveTerm:   len(l.schedule),
		PaymentSchedule: l.schedule,
	}
}

// principalThisMonth ограничивает погашение основного долга остатком.
// В последний месяц срока гасится весь остаток.
// interestOn начисляет проценты за месяц на остаток
func interestOn(balance, r decimal.Decimal) decimal.Decimal {
	return balance.Mul(r).Round(ledgerPrecision)
}

func principalThisMonth(scheduled, balance decimal.Decimal, month, months int) decimal.Decimal {
	if month == months || scheduled.GreaterThanOrEqual(balance) {
		return balance
	}
	return scheduled
}
