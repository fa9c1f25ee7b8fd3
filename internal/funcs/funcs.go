package funcs

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

var TemplateFuncs = template.FuncMap{
	"formatMoney": formatMoney,
	"formatTime":  formatTime,
	"upper":       strings.ToUpper,
}

func formatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(currency))
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}
