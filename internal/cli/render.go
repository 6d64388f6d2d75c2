// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyrecon/internal/config"
	"github.com/katalvlaran/polyrecon/reconstruct"
)

// report is the presentation view of one reconstructed file.
type report struct {
	File         string  `json:"file"`
	Secret       int64   `json:"secret"`
	Coefficients []int64 `json:"coefficients"`
	Samples      int     `json:"samples"`
	Consistent   bool    `json:"consistent"`
	Mismatched   []int64 `json:"mismatched,omitempty"`
	Scope        string  `json:"scope"`
	Rounding     string  `json:"rounding"`
}

func newReport(file string, res reconstruct.Result) report {
	return report{
		File:         file,
		Secret:       res.Secret,
		Coefficients: res.Coefficients,
		Samples:      res.Samples,
		Consistent:   res.Consistent,
		Mismatched:   res.Mismatched,
		Scope:        res.Scope.String(),
		Rounding:     res.Rule,
	}
}

// render writes r to w in the configured format.
func render(w io.Writer, format string, r report) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)

		return enc.Encode(r)
	}

	_, err := fmt.Fprintf(w, "%s\n  secret:       %d\n  coefficients: %s\n  polynomial:   %s\n",
		r.File, r.Secret, formatInts(r.Coefficients), polynomial(r.Coefficients))

	return err
}

func formatInts(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// polynomial renders coefficients highest degree first, e.g. "x^2 + 3".
func polynomial(coeffs []int64) string {
	var sb strings.Builder
	for d := len(coeffs) - 1; d >= 0; d-- {
		c := coeffs[d]
		if c == 0 {
			continue
		}
		abs := c
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteByte('-')
			abs = -c
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
			abs = -c
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if abs != 1 || d == 0 {
			sb.WriteString(strconv.FormatInt(abs, 10))
		}
		switch {
		case d == 1:
			sb.WriteString("x")
		case d > 1:
			sb.WriteString("x^" + strconv.Itoa(d))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
