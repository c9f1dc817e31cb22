package hufftree

// FrequencyEntry pairs a symbol with its occurrence count.
type FrequencyEntry[S comparable] struct {
	Symbol S
	Count  int
}

// Frequencies scans text and returns one FrequencyEntry per distinct
// symbol, in order of first occurrence.  The order is part of the
// contract: New breaks ties between equal weights by table order, so
// entry order determines the exact tree shape (though never the
// optimality of the resulting code).
//
// Empty text yields a nil table.
func Frequencies[S comparable](text []S) []FrequencyEntry[S] {
	if len(text) == 0 {
		return nil
	}

	index := make(map[S]int)
	entries := make([]FrequencyEntry[S], 0, 16)
	for _, sym := range text {
		if i, seen := index[sym]; seen {
			entries[i].Count++
			continue
		}
		index[sym] = len(entries)
		entries = append(entries, FrequencyEntry[S]{Symbol: sym, Count: 1})
	}
	return entries
}
