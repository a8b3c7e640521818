// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sensitive

// IsSensitive reports whether content triggers any sensitivity rule.
// The empty string is never sensitive.
func IsSensitive(content string) bool {
	if content == "" {
		return false
	}

	for _, rule := range rules {
		if rule.Match(content) {
			return true
		}
	}

	return false
}

// Detect returns the names of all rules triggered by content, in
// evaluation order. The result is empty (not nil) when nothing fires.
func Detect(content string) []string {
	findings := make([]string, 0, len(rules))
	if content == "" {
		return findings
	}

	for _, rule := range rules {
		if rule.Match(content) {
			findings = append(findings, rule.Name)
		}
	}

	return findings
}
