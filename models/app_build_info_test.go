package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "today", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123", info.String())
}

func TestAppBuildInfo_ZeroValueString(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A", info.String())
}

func TestDocumentKind_Valid(t *testing.T) {
	assert.True(t, KindDocument.Valid())
	assert.True(t, KindForm.Valid())
	assert.False(t, DocumentKind("image").Valid())
	assert.False(t, DocumentKind("").Valid())
}
