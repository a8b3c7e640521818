// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sensitive

// Placeholders written by Mask. None of them matches any rule.
const (
	SSNMask        = "***-**-****"
	MoneyMask      = "$***.**"
	CreditCardMask = "****-****-****-****"
	IDNumberMask   = "**######"
)

// Mask replaces every SSN, credit card number, money amount above
// MoneyThreshold and ID number in content with its placeholder. Smaller
// amounts and keyword phrases are left untouched.
//
// Mask is idempotent: Mask(Mask(x)) == Mask(x).
func Mask(content string) string {
	// A replacement can expose a word boundary that lets another token
	// match, so passes repeat until the text is stable. Every pass that
	// changes the text removes digits, which bounds the loop.
	for {
		masked := maskOnce(content)
		if masked == content {
			return masked
		}
		content = masked
	}
}

func maskOnce(content string) string {
	content = ssnPattern.ReplaceAllLiteralString(content, SSNMask)
	content = creditCardPattern.ReplaceAllLiteralString(content, CreditCardMask)
	content = moneyPattern.ReplaceAllStringFunc(content, func(token string) string {
		if exceedsThreshold(token) {
			return MoneyMask
		}
		return token
	})

	return idNumberPattern.ReplaceAllLiteralString(content, IDNumberMask)
}
