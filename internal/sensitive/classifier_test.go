// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sensitive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSensitive(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"Empty", "", false},
		{"SSNAndMoney", "SSN: 123-45-6789, Total: $1,245.50", true},
		{"SmallAmountAndDate", "Amount: $12.50, Date: 2024-06-20", false},
		{"OnlySmallAmounts", "Latte $4.50, Croissant $3.25, Tax: $1.12", false},
		{"ThresholdIsNotSensitive", "Total: $1,000.00", false},
		{"LargeAmount", "Account Balance: $15,750.00, Statement Period: May 2024", true},
		{"CreditCard", "Paid with 4532-1234-5678-9012", true},
		{"IDNumber", "Driver license CA1234567", true},
		{"Keyword", "Please bring your passport", true},
		{"Plain", "Merchant: Downtown Coffee\nItems: Latte, Croissant", false},
		{"AmountBeyondFloat64", "Balance: $" + strings.Repeat("9", 400), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSensitive(tt.content))
		})
	}
}

func TestIsSensitive_Deterministic(t *testing.T) {
	content := "SSN: 123-45-6789"
	for i := 0; i < 3; i++ {
		assert.True(t, IsSensitive(content))
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"Empty", "", []string{}},
		{"Nothing", "Amount: $12.50", []string{}},
		{"SSNAndMoney", "SSN: 123-45-6789, Total: $1,245.50", []string{RuleSSN, RuleMoney}},
		{"All", "social security 123-45-6789 $2,000 4532 1234 5678 9012 AB123456",
			[]string{RuleSSN, RuleMoney, RuleCreditCard, RuleIDNumber, RuleKeyword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.content)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, IsSensitive(tt.content))
		})
	}
}
