package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	tally := Tally[uint64]{}
	require.Equal(t, 1, tally.Add(7), "First occurrence counts once")
	require.Equal(t, 1, tally.Add(8), "Values are counted separately")
	require.Equal(t, 2, tally.Add(7), "Repeated occurrences accumulate")
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa), "Map applies f in order")
	require.Empty(t, Map([]int{}, strconv.Itoa), "Empty input gives empty output")
}
