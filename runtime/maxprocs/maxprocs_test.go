package maxprocs

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_LeavesUsableProcs(t *testing.T) {
	assert.GreaterOrEqual(t, runtime.GOMAXPROCS(0), 1)
}
