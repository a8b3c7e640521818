// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := "SSN: 123-45-6789"

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString(data, testHashKey); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("data", "key-1") == HashString("data", "key-2") {
		t.Fatal("different keys must produce different digests")
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("Total: $1,245.50", testHashKey)

	if len(fp) != fingerprintLength {
		t.Fatalf("expected %d characters, got %d", fingerprintLength, len(fp))
	}
	if fp != Fingerprint("Total: $1,245.50", testHashKey) {
		t.Fatal("fingerprint must be deterministic")
	}
	if fp == Fingerprint("Total: $1,245.51", testHashKey) {
		t.Fatal("different contents must produce different fingerprints")
	}
	if fp != HashString("Total: $1,245.50", testHashKey)[:fingerprintLength] {
		t.Fatal("fingerprint must be a prefix of the full digest")
	}
}
