package calculations

import (
	"encoding/csv"
	"strconv"
	"strings"
)

var csvHeader = []string{"Month", "Payment", "Interest", "Principal", "Balance"}

// ExportPaymentScheduleToCSV сериализует график платежей в CSV.
// Строки разделены "\n" без завершающего перевода строки, суммы - с двумя знаками.
func ExportPaymentScheduleToCSV(schedule []ScheduleEntry) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	// Запись в strings.Builder не возвращает ошибок
	_ = w.Write(csvHeader)
	for _, entry := range schedule {
		_ = w.Write([]string{
			strconv.Itoa(entry.Month),
			formatAmount(entry.Payment),
			formatAmount(entry.Interest),
			formatAmount(entry.Principal),
			formatAmount(entry.Balance),
		})
	}
	w.Flush()

	return strings.TrimSuffix(sb.String(), "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
