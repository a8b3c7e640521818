// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sensitive decides whether extracted document text contains
// sensitive data and produces a masked rendering of it.
//
// Detection is a set of independent named rules evaluated with a
// short-circuiting OR:
//
//   - ssn         : 3-2-4 digit Social Security Number;
//   - money       : a dollar amount strictly above [MoneyThreshold];
//   - credit_card : four groups of four digits, optionally separated by a
//     single space or hyphen;
//   - id_number   : two uppercase letters followed by 6 to 8 digits;
//   - keyword     : "passport", "social security", "tax id" or
//     "account number", case-insensitive.
//
// Masking replaces the structured tokens (never the keyword phrases) with
// fixed placeholders. Both [IsSensitive] and [Mask] are pure and safe for
// concurrent use.
package sensitive
