// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sensitive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_Individually(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		input string
		want  bool
	}{
		{"SSN_Plain", SSNRule, "123-45-6789", true},
		{"SSN_InSentence", SSNRule, "SSN: 123-45-6789, Total: $12", true},
		{"SSN_WrongGrouping", SSNRule, "12-345-6789", false},
		{"SSN_TooManyDigits", SSNRule, "1234-56-7890", false},
		{"SSN_Date", SSNRule, "Date: 2024-06-20", false},

		{"Money_AboveThreshold", MoneyRule, "Total: $1,245.50", true},
		{"Money_ExactlyThreshold", MoneyRule, "Total: $1,000", false},
		{"Money_JustAbove", MoneyRule, "Total: $1,000.01", true},
		{"Money_NoCommas", MoneyRule, "Fee $1500", true},
		{"Money_Small", MoneyRule, "Amount: $12.50", false},
		{"Money_SecondTokenLarge", MoneyRule, "Tax: $1.12 and Total: $5,000", true},
		{"Money_Malformed", MoneyRule, "Cost: $,,,", false},
		{"Money_NoDollarSign", MoneyRule, "1500 dollars", false},

		{"Card_Spaces", CreditCardRule, "Card: 4532 1234 5678 9012", true},
		{"Card_Hyphens", CreditCardRule, "Card: 4532-1234-5678-9012", true},
		{"Card_NoSeparators", CreditCardRule, "4532123456789012", true},
		{"Card_DoubleSpace", CreditCardRule, "4532  1234 5678 9012", false},
		{"Card_ThreeGroups", CreditCardRule, "4532 1234 5678", false},

		{"ID_SixDigits", IDNumberRule, "ID: AB123456", true},
		{"ID_EightDigits", IDNumberRule, "ID: AB12345678", true},
		{"ID_NineDigits", IDNumberRule, "ID: AB123456789", false},
		{"ID_FiveDigits", IDNumberRule, "ID: AB12345", false},
		{"ID_Lowercase", IDNumberRule, "ID: ab123456", false},
		{"ID_ThreeLetters", IDNumberRule, "ID: ABC123456", false},

		{"Keyword_Passport", KeywordRule, "Passport issued in 2020", true},
		{"Keyword_SocialSecurityUpper", KeywordRule, "SOCIAL SECURITY", true},
		{"Keyword_TaxID", KeywordRule, "enter your tax id here", true},
		{"Keyword_AccountNumber", KeywordRule, "Account Number: 42", true},
		{"Keyword_Plural", KeywordRule, "passports office", false},
		{"Keyword_Joined", KeywordRule, "taxid", false},
		{"Keyword_AccountBalance", KeywordRule, "Account Balance: 10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Match(tt.input))
		})
	}
}

func TestExceedsThreshold(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"$1,245.50", "$1,245.50", true},
		{"$1000", "$1000", false},
		{"$1000.", "$1000.", false},
		{"$1001.", "$1001.", true},
		{"$,", "$,", false},
		{"$1,0,0,0,1", "$1,0,0,0,1", true},
		{"beyond float64", "$" + strings.Repeat("9", 400), true},
		{"beyond float64 with cents", "$1" + strings.Repeat("0", 320) + ".50", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exceedsThreshold(tt.token))
		})
	}
}

func TestRules_OrderAndCopy(t *testing.T) {
	got := Rules()
	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{RuleSSN, RuleMoney, RuleCreditCard, RuleIDNumber, RuleKeyword}, names)

	got[0] = KeywordRule
	assert.Equal(t, RuleSSN, Rules()[0].Name, "Rules must return a copy")
}
