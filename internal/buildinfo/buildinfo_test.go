package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	Version, Commit, Date = "dev", "", ""
	assert.Equal(t, "dev", Summary())

	Version = ""
	assert.Equal(t, "dev", Summary())

	Version, Commit = "v1.2.3", "0123456789abcdef"
	assert.Equal(t, "v1.2.3 (0123456)", Summary())

	Date = "2026-10-19"
	assert.Equal(t, "v1.2.3 (0123456, 2026-10-19)", Summary())
}
