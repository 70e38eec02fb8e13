package linalg

import "github.com/cpmech/gosl/chk"

// MatPart identifies a structural part of a matrix (diagonal, unit
// diagonal, lower/upper triangle, or a transposed combination of those)
// (original TitSolver source/tit/core/_mat/part.hpp). No solve or copy in
// this package takes a MatPart. Bits may be combined with Combine, which
// panics (a programming error, not a recoverable condition) when both Diag
// and Unit, or both Lower and Upper, are set; a combination with neither
// Diag nor Unit is accepted.
type MatPart uint8

const (
	Diag MatPart = 1 << iota
	Unit
	Lower
	Upper
	Transposed
)

// Combine ORs parts together, checking the exclusivity rules.
func Combine(parts ...MatPart) MatPart {
	var p MatPart
	for _, x := range parts {
		p |= x
	}
	if p&Diag != 0 && p&Unit != 0 {
		chk.Panic("linalg: MatPart cannot set both Diag and Unit")
	}
	if p&Lower != 0 && p&Upper != 0 {
		chk.Panic("linalg: MatPart cannot set both Lower and Upper")
	}
	return p
}
