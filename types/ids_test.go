package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSeqMintsIncrementingIDs(t *testing.T) {
	seq := NewIDSeq("n")
	assert.EqualValues(t, "n1", seq.Next())
	assert.EqualValues(t, "n2", seq.Next())
}

func TestEquivIDFormatsLevelAndCounter(t *testing.T) {
	assert.EqualValues(t, "eq2.3", EquivID(2, 3))
}
