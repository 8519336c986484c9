package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/ladder"
)

// Output formats for rendered results.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// report is the structured form of one search.
type report struct {
	Start      string   `json:"start"                yaml:"start"`
	End        string   `json:"end"                  yaml:"end"`
	Length     int      `json:"length"               yaml:"length"`
	Ladder     []string `json:"ladder"               yaml:"ladder"`
	Expanded   int      `json:"expanded"             yaml:"expanded"`
	Discovered int      `json:"discovered"           yaml:"discovered"`
	Error      string   `json:"error,omitempty"      yaml:"error,omitempty"`
}

func newReport(p ladder.Pair, res *ladder.Result, err error) report {
	r := report{Start: p.Start, End: p.End, Ladder: []string{}}
	if res != nil {
		r.Length = res.Ladder.Len()
		r.Expanded = res.Expanded
		r.Discovered = res.Discovered
		if res.Ladder != nil {
			r.Ladder = res.Ladder
		}
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// render writes r to w in the requested format.
func render(w io.Writer, format string, r report) error {
	switch format {
	case "", OutputText:
		_, err := fmt.Fprintln(w, ladder.Ladder(r.Ladder))
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrUsage, format)
	}
}
