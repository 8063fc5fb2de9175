// Package interpreter derives catalog filters from a free-text question.
package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	domassistant "example.com/product-qa/internal/domain/assistant"
	domcategory "example.com/product-qa/internal/domain/category"
)

// DefaultPriceMarkers introduce a price ceiling. Longer phrases come first so
// that "maksimal" is not read as "maks".
func DefaultPriceMarkers() []string {
	return []string{
		"tidak lebih dari",
		"kurang dari",
		"paling mahal",
		"maksimal",
		"maksimum",
		"di bawah",
		"dibawah",
		"budget",
		"under",
		"maks",
		"max",
	}
}

var unitMultipliers = map[string]float64{
	"juta": 1e6,
	"jt":   1e6,
	"ribu": 1e3,
	"rb":   1e3,
}

type Interpreter struct {
	rules []domcategory.Rule
	price *regexp.Regexp
	log   zerolog.Logger
}

func New(rules []domcategory.Rule, priceMarkers []string, log zerolog.Logger) (*Interpreter, error) {
	if len(rules) == 0 {
		return nil, domcategory.ErrEmptyRuleTable
	}
	normalized := make([]domcategory.Rule, 0, len(rules))
	for _, r := range rules {
		tag := strings.ToLower(strings.TrimSpace(r.Tag))
		if tag == "" {
			return nil, domcategory.ErrInvalidRuleTag
		}
		var keywords []string
		for _, k := range r.Keywords {
			if k = strings.ToLower(k); strings.TrimSpace(k) != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			return nil, domcategory.ErrRuleWithoutKeys
		}
		normalized = append(normalized, domcategory.Rule{Tag: tag, Keywords: keywords})
	}

	if len(priceMarkers) == 0 {
		priceMarkers = DefaultPriceMarkers()
	}
	quoted := make([]string, 0, len(priceMarkers))
	for _, m := range priceMarkers {
		fields := strings.Fields(strings.ToLower(m))
		for i := range fields {
			fields[i] = regexp.QuoteMeta(fields[i])
		}
		quoted = append(quoted, strings.Join(fields, `\s+`))
	}
	price, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b\s*:?\s*(?:rp\.?\s*)?(\S+)(?:\s+(juta|jt|ribu|rb)\b)?`)
	if err != nil {
		return nil, err
	}

	return &Interpreter{
		rules: normalized,
		price: price,
		log:   log.With().Str("component", "interpreter").Logger(),
	}, nil
}

func (i *Interpreter) Interpret(question string) domassistant.QueryFilter {
	return domassistant.QueryFilter{
		Category: i.Category(question),
		MaxPrice: i.MaxPrice(question),
		FreeText: question,
	}
}

// Category returns the tag of the first rule with a keyword contained in the
// question, or nil. A leading or trailing space in a keyword marks a word
// boundary, which also matches the start or end of the question and
// punctuation.
func (i *Interpreter) Category(question string) *string {
	q := strings.ToLower(question)
	words := " " + strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, q) + " "
	for _, r := range i.rules {
		for _, k := range r.Keywords {
			if strings.Contains(q, k) || strings.Contains(words, k) {
				tag := r.Tag
				return &tag
			}
		}
	}
	return nil
}

// MaxPrice returns the first price ceiling in the question that parses to a
// finite non-negative number, or nil.
func (i *Interpreter) MaxPrice(question string) *float64 {
	for _, m := range i.price.FindAllStringSubmatch(question, -1) {
		token, unit := m[1], strings.ToLower(m[2])
		if unit == "" {
			token, unit = splitUnit(token)
		}
		v, err := ParsePrice(token)
		if err != nil {
			i.log.Warn().Str("phrase", m[0]).Err(err).Msg("price phrase ignored")
			continue
		}
		if mult, ok := unitMultipliers[unit]; ok {
			v *= mult
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			i.log.Warn().Str("phrase", m[0]).Err(ErrPriceOutOfRange).Msg("price phrase ignored")
			continue
		}
		return &v
	}
	return nil
}

// splitUnit separates a unit glued to the number, as in "20jt".
func splitUnit(token string) (string, string) {
	lower := strings.ToLower(token)
	for _, unit := range []string{"juta", "ribu", "jt", "rb"} {
		if strings.HasSuffix(lower, unit) && len(lower) > len(unit) {
			return token[:len(token)-len(unit)], unit
		}
	}
	return token, ""
}

// ParsePrice normalizes a numeric literal that may use "." or "," as
// separators. A comma without any dot is a decimal comma. Several dots, or
// dots followed by a comma, mark dots as thousands separators. Otherwise the
// dot is the decimal point and commas are dropped.
func ParsePrice(token string) (float64, error) {
	var b strings.Builder
	for idx, r := range strings.TrimSpace(token) {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || (r == '-' && idx == 0) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	dots := strings.Count(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")
	switch {
	case hasComma && dots == 0:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case dots > 1 || (dots == 1 && hasComma && strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".")):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	default:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrUnparsablePrice
	}
	if v < 0 {
		return 0, ErrNegativePrice
	}
	return v, nil
}
