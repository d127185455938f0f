package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.2.0", "abc1234"

	assert.Contains(t, Info(), "takipcim v1.2.0")
	assert.Contains(t, Info(), "commit: abc1234")
	assert.False(t, IsDev())
}
