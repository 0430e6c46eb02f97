package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentText_DropsBlanksAndRecordsAdjacency(t *testing.T) {
	raw := "EDUCATION\n\nPUBLICATIONS\nSmith, J. (2020). A paper.\n\n\nTEACHING"

	lines := SegmentText(raw)

	require.Len(t, lines, 4)
	for i, line := range lines {
		assert.Equal(t, i, line.Index)
		assert.Equal(t, 4, line.Total)
	}

	assert.Equal(t, "EDUCATION", lines[0].Text)
	assert.False(t, lines[0].PrecededByBlank)
	assert.True(t, lines[0].FollowedByBlank)

	assert.Equal(t, "PUBLICATIONS", lines[1].Text)
	assert.True(t, lines[1].PrecededByBlank)
	assert.False(t, lines[1].FollowedByBlank)

	assert.True(t, lines[2].FollowedByBlank)

	assert.Equal(t, "TEACHING", lines[3].Text)
	assert.True(t, lines[3].PrecededByBlank)
	assert.False(t, lines[3].FollowedByBlank)
}

func TestSegmentText_NormalizesLineEndings(t *testing.T) {
	lines := SegmentText("first\r\nsecond\rthird")

	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0].Text)
	assert.Equal(t, "second", lines[1].Text)
	assert.Equal(t, "third", lines[2].Text)
}

func TestSegmentText_PreservesIndentation(t *testing.T) {
	lines := SegmentText("HEADER\n    indented body line")

	require.Len(t, lines, 2)
	assert.Equal(t, "    indented body line", lines[1].Text)
}

func TestSegmentText_EmptyDocument(t *testing.T) {
	assert.Empty(t, SegmentText(""))
	assert.Empty(t, SegmentText("\n\n\n"))
}

func TestSegmentLines_EquivalentToJoinedText(t *testing.T) {
	fromLines := SegmentLines([]string{"A", "", "B"})
	fromText := SegmentText("A\n\nB")
	assert.Equal(t, fromText, fromLines)
}
