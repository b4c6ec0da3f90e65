// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// solution is the printable outcome of one solve or fit.
type solution struct {
	Label        string    `json:"label,omitempty"`
	Method       string    `json:"method"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	X            []float64 `json:"x,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Residual     float64   `json:"residual"`
}

func writeSolutions(w io.Writer, asJSON bool, sols ...solution) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(sols) == 1 {
			return enc.Encode(sols[0])
		}

		return enc.Encode(sols)
	}

	for _, s := range sols {
		var b strings.Builder
		if s.Label != "" {
			fmt.Fprintf(&b, "%s ", s.Label)
		}
		fmt.Fprintf(&b, "[%s, %dx%d]\n", s.Method, s.Rows, s.Cols)
		if s.X != nil {
			fmt.Fprintf(&b, "  x        = %s\n", formatVec(s.X))
		}
		if s.Coefficients != nil {
			fmt.Fprintf(&b, "  coeffs   = %s\n", formatVec(s.Coefficients))
		}
		fmt.Fprintf(&b, "  residual = %.9g\n", s.Residual)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.9g", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
