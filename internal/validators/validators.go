package validators

import (
	"fmt"

	"github.com/cloud-ru/loan-calculator-go/internal/calculations"
	"github.com/cloud-ru/loan-calculator-go/internal/config"
	"github.com/cloud-ru/loan-calculator-go/pkg/utils"
)

const (
	// MinTermMonths минимальный срок кредита
	MinTermMonths = 1
	// MaxTermMonths максимальный срок кредита (30 лет)
	MaxTermMonths = 360
	// MaxInterestRate максимальная годовая ставка в процентах
	MaxInterestRate = 100.0
)

// Сообщения об ошибках валидации
const (
	MsgLoanAmount          = "Loan amount must be greater than 0"
	MsgTerm                = "Loan term must be between 1 month and 30 years"
	MsgInterestRate        = "Interest rate must be between 0% and 100%"
	MsgDownPaymentNegative = "Down payment cannot be negative"
	MsgDownPaymentTooLarge = "Down payment cannot be greater than or equal to loan amount"
	MsgAdditionalPayment   = "Additional payment cannot be negative"
	MsgPaymentType         = "Payment type must be annuity or differentiated"
)

// ValidateLoanInput проверяет параметры кредита и возвращает список всех нарушений.
// Пустой список означает, что параметры корректны.
func ValidateLoanInput(input calculations.LoanInput) []string {
	errors := make([]string, 0)

	if !utils.IsFinite(input.LoanAmount) || input.LoanAmount <= 0 {
		errors = append(errors, MsgLoanAmount)
	}

	months := input.TermYears*12 + input.TermMonths
	if input.TermYears < 0 || input.TermMonths < 0 {
		errors = append(errors, MsgTerm)
	} else if err := ValidateIntRange("term", months, MinTermMonths, MaxTermMonths); err != nil {
		errors = append(errors, MsgTerm)
	}

	if err := ValidateNumberRange("interest_rate", input.InterestRate, 0, MaxInterestRate); err != nil {
		errors = append(errors, MsgInterestRate)
	}

	if !utils.IsFinite(input.DownPayment) || input.DownPayment < 0 {
		errors = append(errors, MsgDownPaymentNegative)
	}
	if input.DownPayment != 0 && input.DownPayment >= input.LoanAmount {
		errors = append(errors, MsgDownPaymentTooLarge)
	}

	if !utils.IsFinite(input.AdditionalPayment) || input.AdditionalPayment < 0 {
		errors = append(errors, MsgAdditionalPayment)
	}

	return errors
}

// ValidateNumberRange проверяет, что число конечно и в допустимом диапазоне
func ValidateNumberRange(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%g; %g]", name, minInclusive, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckLoanAmountLimit проверяет сумму кредита на верхнюю границу из конфигурации
func CheckLoanAmountLimit(cfg *config.Config, amount float64) error {
	if cfg == nil || cfg.MaxLoanAmount <= 0 {
		return nil
	}
	return ValidateNumberRange("loan_amount", amount, 0, cfg.MaxLoanAmount)
}
