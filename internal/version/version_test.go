package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	prefix, date, hash := VersionPrefix, VersionDate, CommitHash
	t.Cleanup(func() { VersionPrefix, VersionDate, CommitHash = prefix, date, hash })

	assert.True(t, strings.HasPrefix(Print(), "dev-edge-"))

	VersionPrefix, VersionDate, CommitHash = "1.2.0", "20261014", "abc1234"
	assert.Equal(t, "1.2.0-20261014-abc1234", Print())
}
