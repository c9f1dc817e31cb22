// Command huffdemo builds a Huffman code for the text given on the
// command line (or on stdin), then round-trips the text through it,
// printing the frequency table, the derived codes, the encoded bits and
// the decoded text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/chronos-tachyon/hufftree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var jsonOutput = flag.Bool("json", false, "emit the report as JSON")

func main() {
	flag.Parse()

	text, err := readText()
	if err != nil {
		fail(err)
	}

	freqs := hufftree.Frequencies([]rune(text))
	tree, err := hufftree.New(freqs)
	if err != nil {
		fail(err)
	}

	table := tree.CodeTable()
	bits, err := table.Encode([]rune(text))
	if err != nil {
		fail(err)
	}
	decoded, err := tree.Decode(bits)
	if err != nil {
		fail(err)
	}

	if *jsonOutput {
		if err := printJSON(freqs, table, bits, string(decoded)); err != nil {
			fail(err)
		}
		return
	}

	fmt.Println("frequencies:")
	for _, entry := range freqs {
		fmt.Printf("\t%q: %d\n", entry.Symbol, entry.Count)
	}
	if _, err := tree.Dump(os.Stdout); err != nil {
		fail(err)
	}
	fmt.Printf("encoded: %s (%d bits)\n", bitstring(bits), len(bits))
	fmt.Printf("decoded: %q\n", string(decoded))
}

func readText() (string, error) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

type report struct {
	Frequencies []frequency       `json:"frequencies"`
	Codes       map[string]string `json:"codes"`
	Encoded     string            `json:"encoded"`
	Decoded     string            `json:"decoded"`
}

type frequency struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

func printJSON(freqs []hufftree.FrequencyEntry[rune], table hufftree.CodeTable[rune], bits hufftree.Code, decoded string) error {
	r := report{
		Frequencies: make([]frequency, 0, len(freqs)),
		Codes:       make(map[string]string, len(table)),
		Encoded:     bitstring(bits),
		Decoded:     decoded,
	}
	for _, entry := range freqs {
		r.Frequencies = append(r.Frequencies, frequency{Symbol: string(entry.Symbol), Count: entry.Count})
	}
	for sym, code := range table {
		r.Codes[string(sym)] = bitstring(code)
	}

	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

// bitstring renders a Code as bare '0'/'1' characters, without the
// quoting that Code.String applies.
func bitstring(c hufftree.Code) string {
	buf := make([]byte, len(c))
	for i, bit := range c {
		buf[i] = '0' + byte(bit)
	}
	return string(buf)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "huffdemo:", err)
	os.Exit(1)
}
