package banner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"pallet-service/internal/pkg/version"
)

func TestPrintIncludesCommit(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, version.Info{
		Version:   "1.2.3",
		BuildDate: "2026-10-15T10:00:00Z",
		Git:       version.GitInfo{ShortHash: "abc1234", IsDirty: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Version:     1.2.3")
	assert.Contains(t, out, "Commit:      abc1234 (dirty)")
	assert.Contains(t, out, "Build Time:  2026-10-15T10:00:00Z")
}

func TestPrintSkipsUnknownCommit(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, version.Info{Version: "1.0.0", Git: version.GitInfo{ShortHash: "unknown"}})

	assert.NotContains(t, buf.String(), "Commit:")
}
