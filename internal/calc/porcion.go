// Package calc holds the quantity and cost engine: portion parsing, unit
// display resolution, combo expansion, per-event costing, cross-event
// aggregation, and budget recalculation. Every function is a pure
// transformation — no I/O, no mutation of inputs — so callers can recompute
// freely after each edit and persist whatever comes back.
package calc

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	uno = decimal.NewFromInt(1)
	mil = decimal.NewFromInt(1000)
)

// numeroInicial matches the longest leading numeric substring after the
// decimal separator has been normalized to a dot.
var numeroInicial = regexp.MustCompile(`^\d+(?:\.\d+)?`)

// palabrasDeConteo are count-style portion words from the catalog. They only
// fire when no leading number was found: "2 bolsas" parses as 2, not 1.
var palabrasDeConteo = []string{"feta", "bolsa", "unidad", "paquete"}

// ParsearPorcion turns a free-text portion-per-person description into the canonical
// per-guest quantity, in kilograms for mass products. It is the single
// interpreter of Producto.PorcionPorPersona and never fails: anything it
// cannot read yields 1.
//
// Recognized forms, in order:
//   - "1/4", "1/2"         → the fraction value
//   - "30 gr", "83,3 gr"   → grams, converted to kilograms
//   - "2 bolsas", "1 feta" → the bare leading number
//   - "bolsa", "paquete"   → 1 (count word, no number)
func ParsearPorcion(texto *string) decimal.Decimal {
	if texto == nil {
		return uno
	}
	s := strings.ToLower(strings.TrimSpace(*texto))
	if s == "" {
		return uno
	}
	s = strings.ReplaceAll(s, ",", ".")

	if a, b, ok := strings.Cut(s, "/"); ok {
		num, okA := flotanteInicial(a)
		den, okB := flotanteInicial(b)
		if okA && okB && !den.IsZero() {
			return num.Div(den)
		}
		// malformed fraction: fall through to the remaining rules
	}

	if m := numeroInicial.FindString(s); m != "" {
		n, err := decimal.NewFromString(m)
		if err == nil {
			// A gram marker anywhere after the number means the figure is in
			// grams; storage basis is kilograms.
			if strings.Contains(s[len(m):], "g") {
				return n.Div(mil)
			}
			return n
		}
	}

	for _, palabra := range palabrasDeConteo {
		if strings.Contains(s, palabra) {
			return uno
		}
	}
	return uno
}

// flotanteInicial parses the leading numeric substring of s, ignoring any
// trailing text ("4 kg" → 4). Mirrors how the catalog's fraction halves are
// written by hand.
func flotanteInicial(s string) (decimal.Decimal, bool) {
	m := numeroInicial.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	n, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return n, true
}
