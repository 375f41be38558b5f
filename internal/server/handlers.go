package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cloud-ru/loan-calculator-go/internal/calculations"
	"github.com/cloud-ru/loan-calculator-go/internal/tools"
	"github.com/cloud-ru/loan-calculator-go/internal/tracing"
)

const csvFileName = "payment-schedule.csv"

type handler struct {
	tools  map[string]tools.ToolHandler
	logger *zap.Logger
}

func (h *handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// tool отдает результат инструмента в виде JSON
func (h *handler) tool(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		params, err := decodeParams(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
		}

		result, err := h.call(c, name, params)
		if err != nil {
			return h.toolError(c, err)
		}

		input, _, _ := tools.ParseLoanInput(params)
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"input":   input,
			"result":  result,
		})
	}
}

// scheduleCSV отдает график платежей файлом CSV
func (h *handler) scheduleCSV(c echo.Context) error {
	params, err := decodeParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
	}

	result, err := h.call(c, tools.ToolLoanScheduleCSV, params)
	if err != nil {
		return h.toolError(c, err)
	}

	csv, ok := result.(string)
	if !ok {
		return fmt.Errorf("unexpected csv result type %T", result)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", csvFileName))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func (h *handler) call(c echo.Context, name string, params map[string]interface{}) (interface{}, error) {
	toolHandler, ok := h.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %s is not registered", name)
	}
	return toolHandler(c.Request().Context(), params)
}

// toolError переводит ошибку инструмента в HTTP ответ
func (h *handler) toolError(c echo.Context, err error) error {
	var verr *tools.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "Invalid input",
			"errors": verr.Messages,
		})
	case errors.Is(err, tools.ErrInvalidParameter):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	default:
		h.logger.Error("tool failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}

func decodeParams(c echo.Context) (map[string]interface{}, error) {
	params := make(map[string]interface{})
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		return nil, err
	}
	return params, nil
}

// docs описывает API так же, как GET на маршрутах калькуляторов
func (h *handler) docs(c echo.Context) error {
	example := calculations.LoanInput{
		LoanAmount:   100000,
		TermYears:    5,
		InterestRate: 10,
		PaymentType:  calculations.PaymentTypeAnnuity,
	}

	return c.JSON(http.StatusOK, map[string]any{
		"name":        "Loan Calculator API",
		"version":     tracing.ServiceVersion,
		"description": "Annuity and differentiated loan amortization schedules",
		"endpoints": map[string]any{
			"POST /api/loan":              "Calculate a loan and its payment schedule",
			"POST /api/loan/validate":     "Validate loan parameters",
			"POST /api/loan/overpayment":  "Calculate loan overpayment",
			"POST /api/loan/compare":      "Compare annuity and differentiated schedules",
			"POST /api/loan/schedule.csv": "Export the payment schedule as CSV",
		},
		"parameters": map[string]string{
			tools.ParamLoanAmount:        "Loan amount before down payment (> 0)",
			tools.ParamTermYears:         "Term in years",
			tools.ParamTermMonths:        "Additional term in months; total term 1..360 months",
			tools.ParamInterestRate:      "Annual interest rate in percent (0..100)",
			tools.ParamPaymentType:       "annuity or differentiated",
			tools.ParamDownPayment:       "Optional down payment (0 <= down payment < loan amount)",
			tools.ParamAdditionalPayment: "Optional extra principal paid every month (>= 0)",
		},
		"example": map[string]any{
			"request": example,
			"summary": calculations.CalculateLoanOverpayment(example),
		},
	})
}
