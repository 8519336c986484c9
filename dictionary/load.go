package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a word list from r. Tokens are separated by any whitespace,
// lines starting with '#' are comments, and every token goes through
// Normalize. ErrNoWords is returned when nothing usable was read.
func Load(r io.Reader) (*Dictionary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			words = append(words, Normalize(tok))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return New(words...), nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
