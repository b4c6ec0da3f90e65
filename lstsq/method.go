// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"
	"strings"
)

// Method selects the least-squares algorithm. The package never picks one on
// the caller's behalf and never falls back from one to the other.
type Method int

const (
	// MethodQR factors A = Q·R and back-substitutes R′·x = c.
	MethodQR Method = iota

	// MethodNormal solves (AᵀA)·x = Aᵀb. Forming AᵀA squares the condition
	// number of A, so accuracy degrades faster on ill-conditioned inputs.
	MethodNormal
)

// String returns the canonical lowercase name.
func (m Method) String() string {
	switch m {
	case MethodQR:
		return "qr"
	case MethodNormal:
		return "normal"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a case-insensitive name to a Method.
// Accepted: "qr", "normal" (alias "normal-equations").
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qr":
		return MethodQR, nil
	case "normal", "normal-equations":
		return MethodNormal, nil
	default:
		return 0, fmt.Errorf("lstsq.ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}
