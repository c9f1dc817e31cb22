package hufftree

import (
	"sync"
	"testing"

	"github.com/dchest/uniuri"
	icza "github.com/icza/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_RandomTexts(t *testing.T) {
	alphabet := []byte("abcdefgh")
	for i := 0; i < 50; i++ {
		text := []rune(uniuri.NewLenChars(128, alphabet))
		freqs := Frequencies(text)
		if len(freqs) < 2 {
			continue
		}

		tree, err := New(freqs)
		require.NoError(t, err)
		bits, err := tree.CodeTable().Encode(text)
		require.NoError(t, err)
		decoded, err := tree.Decode(bits)
		require.NoError(t, err)
		require.Equal(t, text, decoded)
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	text := []rune(uniuri.NewLenChars(256, []byte("abcdefghijklmnop")))
	tree, err := New(Frequencies(text))
	require.NoError(t, err)

	table := tree.CodeTable()
	codes := make([]Code, 0, len(table))
	for _, code := range table {
		codes = append(codes, code)
	}
	for i, a := range codes {
		for j, b := range codes {
			if i == j {
				continue
			}
			require.False(t, a.HasPrefix(b), "%s is a prefix of %s", b, a)
		}
	}
}

func TestWeightedOptimality_Reference(t *testing.T) {
	texts := []string{
		"aaaabcc",
		"abracadabra",
		skewedText,
		"the quick brown fox jumps over the lazy dog",
	}
	for _, text := range texts {
		freqs := Frequencies([]rune(text))
		tree, err := New(freqs)
		require.NoError(t, err)
		table := tree.CodeTable()

		total := 0
		for _, entry := range freqs {
			total += entry.Count * len(table[entry.Symbol])
		}

		bits, err := table.Encode([]rune(text))
		require.NoError(t, err)
		require.Len(t, bits, total)

		require.Equal(t, referenceTotal(freqs), total, "total weighted length for %q", text)
	}
}

// referenceTotal computes the optimal total weighted code length for
// freqs with an independent Huffman implementation.
func referenceTotal(freqs []FrequencyEntry[rune]) int {
	leaves := make([]*icza.Node, len(freqs))
	for i, entry := range freqs {
		leaves[i] = &icza.Node{Value: icza.ValueType(entry.Symbol), Count: entry.Count}
	}
	root := icza.Build(leaves)

	total := 0
	var walk func(n *icza.Node, depth int)
	walk = func(n *icza.Node, depth int) {
		if n.Left == nil && n.Right == nil {
			total += n.Count * depth
			return
		}
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(root, 0)
	return total
}

func TestConcurrentRoundTrips(t *testing.T) {
	text := []rune(skewedText)
	tree, err := New(Frequencies(text))
	require.NoError(t, err)
	table := tree.CodeTable()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				bits, err := table.Encode(text)
				if !assert.NoError(t, err) {
					return
				}
				decoded, err := tree.Decode(bits)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, text, decoded)
			}
		}()
	}
	wg.Wait()
}
