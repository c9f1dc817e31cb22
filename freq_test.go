package hufftree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequencies_FirstOccurrenceOrder(t *testing.T) {
	freqs := Frequencies([]rune("abracadabra"))
	want := []FrequencyEntry[rune]{
		{Symbol: 'a', Count: 5},
		{Symbol: 'b', Count: 2},
		{Symbol: 'r', Count: 2},
		{Symbol: 'c', Count: 1},
		{Symbol: 'd', Count: 1},
	}
	require.Equal(t, want, freqs)
}

func TestFrequencies_Empty(t *testing.T) {
	require.Nil(t, Frequencies[rune](nil))
	require.Nil(t, Frequencies([]rune("")))
}

func TestFrequencies_TokenAlphabet(t *testing.T) {
	words := []string{"warn", "info", "warn", "warn", "error"}
	want := []FrequencyEntry[string]{
		{Symbol: "warn", Count: 3},
		{Symbol: "info", Count: 1},
		{Symbol: "error", Count: 1},
	}
	require.Equal(t, want, Frequencies(words))
}
