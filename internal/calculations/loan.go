package calculations

import "fmt"

// CalculateLoan рассчитывает кредит по схеме из input.PaymentType.
// Неизвестная схема - ошибка программиста, а не входных данных.
func CalculateLoan(input LoanInput) LoanResult {
	switch input.PaymentType {
	case PaymentTypeAnnuity:
		return CalculateAnnuityLoan(input)
	case PaymentTypeDifferentiated:
		return CalculateDifferentiatedLoan(input)
	default:
		panic(fmt.Sprintf("calculations: unsupported payment type %v", input.PaymentType))
	}
}

// GeneratePaymentSchedule возвращает только график платежей
func GeneratePaymentSchedule(input LoanInput) []ScheduleEntry {
	return CalculateLoan(input).PaymentSchedule
}
