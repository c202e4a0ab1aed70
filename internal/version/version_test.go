package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	prev := GitCommit
	t.Cleanup(func() { GitCommit = prev })
	GitCommit = "abc123"

	assert.Equal(t, "dfma v"+Version+" (commit abc123, built "+BuildTime+")", String())
}
