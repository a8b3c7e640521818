// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sensitive

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Rule names reported by [Detect].
const (
	RuleSSN        = "ssn"
	RuleMoney      = "money"
	RuleCreditCard = "credit_card"
	RuleIDNumber   = "id_number"
	RuleKeyword    = "keyword"
)

// MoneyThreshold is the amount a money token must strictly exceed to be
// considered sensitive.
const MoneyThreshold = 1000.0

var (
	ssnPattern        = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	moneyPattern      = regexp.MustCompile(`\$[\d,]+\.?\d*`)
	creditCardPattern = regexp.MustCompile(`\b\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{4}\b`)
	idNumberPattern   = regexp.MustCompile(`\b[A-Z]{2}\d{6,8}\b`)
	keywordPattern    = regexp.MustCompile(`(?i)\b(?:passport|social security|tax id|account number)\b`)

	moneyStripper = strings.NewReplacer("$", "", ",", "")
)

// Rule is a single named sensitivity predicate.
type Rule struct {
	// Name identifies the rule in [Detect] results.
	Name string

	// Description is a short human readable explanation.
	Description string

	match func(content string) bool
}

// Match reports whether content triggers the rule.
func (r Rule) Match(content string) bool {
	return r.match(content)
}

var (
	// SSNRule matches a Social Security Number such as 123-45-6789.
	SSNRule = Rule{
		Name:        RuleSSN,
		Description: "social security number",
		match:       ssnPattern.MatchString,
	}

	// MoneyRule matches a dollar amount above MoneyThreshold.
	// Every money token is checked, one large amount is enough.
	MoneyRule = Rule{
		Name:        RuleMoney,
		Description: "amount above $1,000",
		match:       containsLargeAmount,
	}

	// CreditCardRule matches a 16 digit card number.
	CreditCardRule = Rule{
		Name:        RuleCreditCard,
		Description: "credit card number",
		match:       creditCardPattern.MatchString,
	}

	// IDNumberRule matches identifiers like AB1234567.
	IDNumberRule = Rule{
		Name:        RuleIDNumber,
		Description: "identification number",
		match:       idNumberPattern.MatchString,
	}

	// KeywordRule matches sensitive phrases regardless of case.
	KeywordRule = Rule{
		Name:        RuleKeyword,
		Description: "sensitive keyword",
		match:       keywordPattern.MatchString,
	}
)

// rules is the evaluation order used by IsSensitive and Detect.
var rules = []Rule{SSNRule, MoneyRule, CreditCardRule, IDNumberRule, KeywordRule}

// Rules returns the rule set in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func containsLargeAmount(content string) bool {
	for _, token := range moneyPattern.FindAllString(content, -1) {
		if exceedsThreshold(token) {
			return true
		}
	}
	return false
}

// exceedsThreshold parses a money token after stripping "$" and ",".
// A malformed token never exceeds the threshold. A well-formed amount too
// large for a float64 parses as +Inf and does.
func exceedsThreshold(token string) bool {
	value, err := strconv.ParseFloat(moneyStripper.Replace(token), 64)
	if errors.Is(err, strconv.ErrRange) {
		return value > MoneyThreshold
	}
	if err != nil {
		return false
	}

	return value > MoneyThreshold
}
