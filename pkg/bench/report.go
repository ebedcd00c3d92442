package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/permtree/pkg/errors"
)

// Report output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the encodings supported by Encode.
var Formats = []string{FormatText, FormatCSV, FormatJSON, FormatYAML}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatCSV:
		return r.WriteCSV(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.ValidateFormat(format, Formats...)
	}
}

// WriteText writes one "n enumerate lookup1 lookup2" line per row, separated
// by single spaces. Overflowed sizes print -1 for both lookup averages.
func (r *Report) WriteText(w io.Writer) error {
	for _, row := range r.Rows {
		_, err := fmt.Fprintf(w, "%d %d %s %s\n",
			row.N, row.EnumerateMicros,
			formatMicros(row.AvgEnumerationLookupMicros),
			formatMicros(row.AvgDirectLookupMicros))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the rows as CSV with a header line.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"n", "permutations", "enumerate_us", "avg_enumeration_lookup_us", "avg_direct_lookup_us", "mismatches"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := []string{
			strconv.Itoa(row.N),
			strconv.FormatInt(row.Permutations, 10),
			strconv.FormatInt(row.EnumerateMicros, 10),
			formatMicros(row.AvgEnumerationLookupMicros),
			formatMicros(row.AvgDirectLookupMicros),
			strconv.Itoa(row.Mismatches),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode parses a JSON-encoded report.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode report")
	}
	return &r, nil
}

func formatMicros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
