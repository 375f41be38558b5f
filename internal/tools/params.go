package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cloud-ru/loan-calculator-go/internal/calculations"
	"github.com/cloud-ru/loan-calculator-go/internal/validators"
	"github.com/cloud-ru/loan-calculator-go/pkg/utils"
)

// Имена параметров инструментов
const (
	ParamLoanAmount        = "loan_amount"
	ParamTermYears         = "term_years"
	ParamTermMonths        = "term_months"
	ParamInterestRate      = "interest_rate"
	ParamPaymentType       = "payment_type"
	ParamDownPayment       = "down_payment"
	ParamAdditionalPayment = "additional_payment"
)

// ErrInvalidParameter возвращается, когда параметр нельзя привести к нужному типу
var ErrInvalidParameter = errors.New("invalid parameter")

// ValidationError содержит все нарушения, найденные при проверке параметров кредита
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// ParseLoanInput приводит нетипизированные параметры к LoanInput.
// Отсутствующие числовые параметры считаются нулевыми, их проверяет валидатор;
// отсутствие ставки или неизвестная схема погашения попадают в список сообщений.
func ParseLoanInput(params map[string]interface{}) (calculations.LoanInput, []string, error) {
	var (
		input    calculations.LoanInput
		messages []string
		err      error
	)

	if input.LoanAmount, err = optionalFloat(params, ParamLoanAmount); err != nil {
		return input, nil, err
	}
	if input.TermYears, err = optionalInt(params, ParamTermYears); err != nil {
		return input, nil, err
	}
	if input.TermMonths, err = optionalInt(params, ParamTermMonths); err != nil {
		return input, nil, err
	}
	if input.DownPayment, err = optionalFloat(params, ParamDownPayment); err != nil {
		return input, nil, err
	}
	if input.AdditionalPayment, err = optionalFloat(params, ParamAdditionalPayment); err != nil {
		return input, nil, err
	}

	if raw, ok := params[ParamInterestRate]; !ok || raw == nil {
		messages = append(messages, validators.MsgInterestRate)
	} else if input.InterestRate, err = optionalFloat(params, ParamInterestRate); err != nil {
		return input, nil, err
	}

	rawType, _ := params[ParamPaymentType].(string)
	if input.PaymentType, err = calculations.ParsePaymentType(rawType); err != nil {
		messages = append(messages, validators.MsgPaymentType)
	}

	return input, messages, nil
}

func optionalFloat(params map[string]interface{}, name string) (float64, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, nil
	}
	value, ok := utils.AsFloat(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
	return value, nil
}

func optionalInt(params map[string]interface{}, name string) (int, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, nil
	}
	value, ok := utils.AsInt(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
	return value, nil
}
