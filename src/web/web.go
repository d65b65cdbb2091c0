package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FormatMoney renders amount in the given ISO currency, e.g. "$1,234.50".
// Unknown codes fall back to the plain amount followed by the code.
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return humanize.CommafWithDigits(amount.InexactFloat64(), 2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatSignedMoney prefixes positive amounts with "+".
func FormatSignedMoney(amount decimal.Decimal, code string) string {
	if amount.IsPositive() {
		return "+" + FormatMoney(amount, code)
	}
	return FormatMoney(amount, code)
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// barWidth clamps a percentage to [0, 100] for SVG bar widths.
func barWidth(p decimal.Decimal) string {
	switch {
	case p.IsNegative():
		return "0%"
	case p.GreaterThan(decimal.NewFromInt(100)):
		return "100%"
	default:
		return p.StringFixed(2) + "%"
	}
}

func tone(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return "gain"
	case d.IsNegative():
		return "loss"
	default:
		return "flat"
	}
}

var funcs = template.FuncMap{
	"money":       FormatMoney,
	"signedMoney": FormatSignedMoney,
	"percent":     FormatPercent,
	"barWidth":    barWidth,
	"tone":        tone,
	"ago":         func(t time.Time) string { return humanize.Time(t) },
	"comma":       func(n int) string { return humanize.Comma(int64(n)) },
}

// Templates parses the embedded dashboard templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// StaticHandler serves the embedded CSS and JS under the prefix it is mounted at.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
