package calculations

import (
	"fmt"
	"strings"
)

// PaymentType определяет схему погашения кредита
type PaymentType int

const (
	// PaymentTypeAnnuity - аннуитетные (равные) платежи
	PaymentTypeAnnuity PaymentType = iota
	// PaymentTypeDifferentiated - дифференцированные (убывающие) платежи
	PaymentTypeDifferentiated
)

// String возвращает имя схемы погашения в том виде, в котором оно приходит во входных данных
func (p PaymentType) String() string {
	switch p {
	case PaymentTypeAnnuity:
		return "annuity"
	case PaymentTypeDifferentiated:
		return "differentiated"
	default:
		return fmt.Sprintf("PaymentType(%d)", int(p))
	}
}

// ParsePaymentType разбирает имя схемы погашения
func ParsePaymentType(s string) (PaymentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annuity":
		return PaymentTypeAnnuity, nil
	case "differentiated":
		return PaymentTypeDifferentiated, nil
	default:
		return 0, fmt.Errorf("unknown payment type %q", s)
	}
}

// MarshalText сериализует схему погашения в строку
func (p PaymentType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText разбирает схему погашения из строки
func (p *PaymentType) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// LoanInput содержит параметры кредита
type LoanInput struct {
	LoanAmount        float64     `json:"loan_amount"`
	TermYears         int         `json:"term_years"`
	TermMonths        int         `json:"term_months"`
	InterestRate      float64     `json:"interest_rate"`
	PaymentType       PaymentType `json:"payment_type"`
	DownPayment       float64     `json:"down_payment,omitempty"`
	AdditionalPayment float64     `json:"additional_payment,omitempty"`
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// LoanResult представляет результат расчета кредита
type LoanResult struct {
	MonthlyPayment  float64         `json:"monthly_payment"`
	TotalPayments   float64         `json:"total_payments"`
	TotalInterest   float64         `json:"total_interest"`
	EffectiveTerm   int             `json:"effective_term"`
	PaymentSchedule []ScheduleEntry `json:"payment_schedule"`
}

// OverpaymentResult представляет сводку по переплате
type OverpaymentResult struct {
	LoanAmount         float64 `json:"loan_amount"`
	FinancedPrincipal  float64 `json:"financed_principal"`
	TermMonths         int     `json:"term_months"`
	InterestRate       float64 `json:"interest_rate"`
	DownPayment        float64 `json:"down_payment"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	TotalPayments      float64 `json:"total_payments"`
	TotalInterest      float64 `json:"total_interest"`
	EffectiveTerm      int     `json:"effective_term"`
	OverpaymentAmount  float64 `json:"overpayment_amount"`
	OverpaymentPercent float64 `json:"overpayment_percent"`
	TotalCost          float64 `json:"total_cost"`
	PrincipalPaid      float64 `json:"principal_paid"`
	InterestPaid       float64 `json:"interest_paid"`
}

// ComparisonResult представляет результат сравнения схем погашения
type ComparisonResult struct {
	Annuity        LoanResult `json:"annuity"`
	Differentiated LoanResult `json:"differentiated"`
	TotalPaidDiff  float64    `json:"total_paid_diff"`
	InterestDiff   float64    `json:"interest_diff"`
	CheaperType    string     `json:"cheaper_type"`
	Savings        float64    `json:"savings"`
}
