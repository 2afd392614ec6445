package formatting

import (
	"math"
	"strconv"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultPercentagePrecision = 2
	HeadlinePrecision          = 1
	maxPrecision               = 4
)

var (
	brazilianPrinter = message.NewPrinter(language.BrazilianPortuguese)
	americanPrinter  = message.NewPrinter(language.AmericanEnglish)
)

type options struct {
	precision int
}

// Option ajusta a formatação de um valor
type Option func(*options)

// WithPrecision define a quantidade de casas decimais das porcentagens
func WithPrecision(precision int) Option {
	return func(o *options) {
		if precision < 0 {
			precision = 0
		}
		if precision > maxPrecision {
			precision = maxPrecision
		}
		o.precision = precision
	}
}

// Format converte um valor já normalizado em texto de exibição, usando o locale da moeda.
// É o único ponto em que os valores são arredondados.
func Format(value float64, unit domain.Unit, currency domain.Currency, opts ...Option) string {
	o := options{precision: DefaultPercentagePrecision}
	for _, opt := range opts {
		opt(&o)
	}

	value = utils.Finite(value)
	printer := printerFor(currency)

	switch unit {
	case domain.UnitCurrency:
		rounded := utils.RoundWithTwoDecimalPlace(value)
		return sign(rounded) + symbol(currency) + printer.Sprintf("%.2f", math.Abs(rounded))
	case domain.UnitPercentage:
		rounded := utils.Round(value, int32(o.precision))
		return sign(rounded) + printer.Sprintf("%."+strconv.Itoa(o.precision)+"f", math.Abs(rounded)) + "%"
	case domain.UnitMultiplier:
		rounded := utils.RoundWithTwoDecimalPlace(value)
		return sign(rounded) + printer.Sprintf("%.2f", math.Abs(rounded)) + "x"
	case domain.UnitCount:
		rounded := utils.Round(value, 0)
		return sign(rounded) + printer.Sprintf("%.0f", math.Abs(rounded))
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

func printerFor(currency domain.Currency) *message.Printer {
	if currency == domain.CurrencyUSD {
		return americanPrinter
	}

	return brazilianPrinter
}

func symbol(currency domain.Currency) string {
	if currency == domain.CurrencyUSD {
		return "$"
	}

	return "R$ "
}

func sign(rounded float64) string {
	if rounded < 0 {
		return "-"
	}

	return ""
}
