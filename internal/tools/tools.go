package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloud-ru/loan-calculator-go/internal/calculations"
	"github.com/cloud-ru/loan-calculator-go/internal/config"
	"github.com/cloud-ru/loan-calculator-go/internal/logging"
	"github.com/cloud-ru/loan-calculator-go/internal/metrics"
	"github.com/cloud-ru/loan-calculator-go/internal/validators"
	"github.com/cloud-ru/loan-calculator-go/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Имена инструментов
const (
	ToolLoanCalculate   = "loan_calculate"
	ToolLoanValidate    = "loan_validate"
	ToolLoanScheduleCSV = "loan_schedule_csv"
	ToolLoanOverpayment = "loan_overpayment"
	ToolCompareLoans    = "compare_loan_schedules"
)

// apiService значение метки service в метриках вызовов
const apiService = "http"

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ValidationReport результат инструмента проверки параметров
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolLoanCalculate:   LoanCalculateHandler(cfg, tracer, logger),
		ToolLoanValidate:    LoanValidateHandler(cfg, tracer, logger),
		ToolLoanScheduleCSV: LoanScheduleCSVHandler(cfg, tracer, logger),
		ToolLoanOverpayment: LoanOverpaymentHandler(cfg, tracer, logger),
		ToolCompareLoans:    CompareLoanSchedulesHandler(cfg, tracer, logger),
	}
}

// calculation выполняет расчет над проверенными параметрами и возвращает атрибуты для спана
type calculation func(input calculations.LoanInput) (interface{}, []attribute.KeyValue)

// loanTool общий путь всех кредитных инструментов: разбор параметров, валидация, расчет, метрики
func loanTool(toolName string, cfg *config.Config, tracer trace.Tracer, logger *zap.Logger, calc calculation) ToolHandler {
	logger = logging.OrNop(logger).With(zap.String("tool", toolName))

	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		metrics.APICalls.WithLabelValues(apiService, toolName, "started").Inc()

		input, messages, err := ParseLoanInput(params)
		if err != nil {
			span.SetAttributes(attribute.String("error", "invalid_parameter"))
			span.SetStatus(codes.Error, err.Error())
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "parameter").Inc()
			metrics.APICalls.WithLabelValues(apiService, toolName, "error").Inc()
			logger.Debug("invalid parameter", zap.Error(err))
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		span.SetAttributes(
			attribute.Float64("loan_amount", input.LoanAmount),
			attribute.Int("term_years", input.TermYears),
			attribute.Int("term_months", input.TermMonths),
			attribute.Float64("interest_rate", input.InterestRate),
			attribute.String("payment_type", input.PaymentType.String()),
			attribute.Float64("down_payment", input.DownPayment),
			attribute.Float64("additional_payment", input.AdditionalPayment),
		)

		messages = append(messages, validators.ValidateLoanInput(input)...)
		if err := validators.CheckLoanAmountLimit(cfg, input.LoanAmount); err != nil && input.LoanAmount > 0 {
			messages = append(messages, err.Error())
		}
		if len(messages) > 0 {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			metrics.APICalls.WithLabelValues(apiService, toolName, "error").Inc()
			logger.Debug("validation failed", zap.Strings("errors", messages))
			return nil, fmt.Errorf("неверные параметры: %w", &ValidationError{Messages: messages})
		}

		result, attrs := calc(input)

		span.SetAttributes(attribute.Bool("success", true))
		span.SetAttributes(attrs...)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues(apiService, toolName, "success").Inc()
		logger.Debug("calculation finished",
			zap.String("payment_type", input.PaymentType.String()),
			zap.Float64("loan_amount", input.LoanAmount),
		)

		return result, nil
	}
}

func loanAttributes(result calculations.LoanResult) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("monthly_payment", utils.Round2(result.MonthlyPayment)),
		attribute.Float64("total_payments", utils.Round2(result.TotalPayments)),
		attribute.Float64("total_interest", utils.Round2(result.TotalInterest)),
		attribute.Int("effective_term", result.EffectiveTerm),
	}
}

// LoanCalculateHandler обрабатывает запрос на расчет кредита по выбранной схеме
func LoanCalculateHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return loanTool(ToolLoanCalculate, cfg, tracer, logger, func(input calculations.LoanInput) (interface{}, []attribute.KeyValue) {
		result := calculations.CalculateLoan(input)
		metrics.EffectiveTerm.WithLabelValues(input.PaymentType.String()).Observe(float64(result.EffectiveTerm))
		return result, loanAttributes(result)
	})
}

// LoanScheduleCSVHandler обрабатывает запрос на выгрузку графика платежей в CSV
func LoanScheduleCSVHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return loanTool(ToolLoanScheduleCSV, cfg, tracer, logger, func(input calculations.LoanInput) (interface{}, []attribute.KeyValue) {
		schedule := calculations.GeneratePaymentSchedule(input)
		return calculations.ExportPaymentScheduleToCSV(schedule), []attribute.KeyValue{
			attribute.Int("rows", len(schedule)),
		}
	})
}

// LoanOverpaymentHandler обрабатывает запрос на расчет переплаты по кредиту
func LoanOverpaymentHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return loanTool(ToolLoanOverpayment, cfg, tracer, logger, func(input calculations.LoanInput) (interface{}, []attribute.KeyValue) {
		result := calculations.CalculateLoanOverpayment(input)
		return result, []attribute.KeyValue{
			attribute.Float64("overpayment_amount", utils.Round2(result.OverpaymentAmount)),
			attribute.Float64("overpayment_percent", result.OverpaymentPercent),
		}
	})
}

// CompareLoanSchedulesHandler обрабатывает запрос на сравнение аннуитетной и дифференцированной схем
func CompareLoanSchedulesHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return loanTool(ToolCompareLoans, cfg, tracer, logger, func(input calculations.LoanInput) (interface{}, []attribute.KeyValue) {
		result := calculations.CompareLoans(input)
		return result, []attribute.KeyValue{
			attribute.String("cheaper_type", result.CheaperType),
			attribute.Float64("savings", utils.Round2(result.Savings)),
		}
	})
}

// LoanValidateHandler проверяет параметры кредита без расчета.
// Нарушения возвращаются в отчете, а не ошибкой.
func LoanValidateHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	inner := loanTool(ToolLoanValidate, cfg, tracer, logger, func(calculations.LoanInput) (interface{}, []attribute.KeyValue) {
		return ValidationReport{Valid: true, Errors: []string{}}, nil
	})

	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		result, err := inner(ctx, params)
		var verr *ValidationError
		if errors.As(err, &verr) {
			return ValidationReport{Valid: false, Errors: verr.Messages}, nil
		}
		return result, err
	}
}
