package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "1.2.0 (abc123, 2026-10-01)", info.String())

	blank := NewAppBuildInfo(" ", "", "")
	assert.Equal(t, NotAvailable, blank.BuildVersion())
	assert.Equal(t, "N/A (N/A, N/A)", blank.String())

	var zero AppBuildInfo
	assert.Equal(t, NotAvailable, zero.BuildCommit())
}
