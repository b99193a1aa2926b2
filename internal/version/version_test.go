package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	orig := []string{Version, Commit, Date}
	t.Cleanup(func() {
		Version, Commit, Date = orig[0], orig[1], orig[2]
	})

	Version, Commit, Date = "v1.2.3", "abc1234", "2026-10-01"

	info := Get()
	assert.Equal(t, "v1.2.3 (commit abc1234, built 2026-10-01)", info.String())
	assert.Equal(t, "autocomment/v1.2.3", info.UserAgent())
}
