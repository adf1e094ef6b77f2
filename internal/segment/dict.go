package segment

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultUserFreq is assigned to dictionary lines that carry no frequency.
const DefaultUserFreq = 1000

//go:embed dict.txt
var builtinDict string

// Dictionary maps words to corpus frequencies. Build it once, then share it
// read-only between segmenters.
type Dictionary struct {
	freq   map[string]int
	total  int
	maxLen int // longest word, in runes
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{freq: make(map[string]int)}
}

// DefaultDictionary returns the embedded general-purpose dictionary.
func DefaultDictionary() (*Dictionary, error) {
	d := NewDictionary()
	if err := d.Load(strings.NewReader(builtinDict)); err != nil {
		return nil, fmt.Errorf("load builtin dictionary: %w", err)
	}
	return d, nil
}

// Add inserts or replaces word. Non-positive frequencies are ignored.
func (d *Dictionary) Add(word string, freq int) {
	if word == "" || freq <= 0 {
		return
	}
	d.total += freq - d.freq[word]
	d.freq[word] = freq
	if n := utf8.RuneCountInString(word); n > d.maxLen {
		d.maxLen = n
	}
}

// Freq returns the frequency of word, 0 when unknown.
func (d *Dictionary) Freq(word string) int {
	return d.freq[word]
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.freq)
}

// Load reads "word [freq] [tag]" lines. Blank lines and lines starting with
// '#' are skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		freq := DefaultUserFreq
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: bad frequency %q", line, fields[1])
			}
			freq = n
		}
		d.Add(fields[0], freq)
	}
	return scanner.Err()
}

// LoadFile loads a user dictionary from path.
func (d *Dictionary) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := d.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
