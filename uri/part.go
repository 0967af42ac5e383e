package uri

import (
	"fmt"
	"strconv"
)

// Presence describes whether a URI component appears in the URI.
type Presence uint8

const (
	// Absent means the component and its delimiter are missing.
	Absent Presence = iota
	// Empty means the delimiter is there but the component value has zero length,
	// e.g. the query of "http://a/?" or the port of "http://a:/".
	Empty
	// Present means the component has a non-empty value.
	Present
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Empty:
		return "empty"
	case Present:
		return "present"
	default:
		return "Presence(" + strconv.Itoa(int(p)) + ")"
	}
}

// Part is a URI component value that keeps track of its presence.
// The zero value is an absent part.
type Part struct {
	val  string
	pres Presence
}

// NoPart returns an absent part.
func NoPart() Part { return Part{} }

// EmptyPart returns a present part of zero length.
func EmptyPart() Part { return Part{pres: Empty} }

// PartOf returns a present part with value s.
// PartOf("") is the same as [EmptyPart].
func PartOf(s string) Part {
	if s == "" {
		return EmptyPart()
	}
	return Part{val: s, pres: Present}
}

// Presence returns the presence state of the part.
func (p Part) Presence() Presence { return p.pres }

// IsAbsent reports whether the part is absent.
func (p Part) IsAbsent() bool { return p.pres == Absent }

// IsDefined reports whether the part is present, possibly empty.
func (p Part) IsDefined() bool { return p.pres != Absent }

// Value returns the part value, empty if the part is absent or empty.
func (p Part) Value() string { return p.val }

// Get returns the value and whether the part is defined.
func (p Part) Get() (string, bool) { return p.val, p.IsDefined() }

// String returns the part value.
func (p Part) String() string { return p.val }

// Format implements fmt.Formatter.
// The %v verb with the '+' flag prints the presence state along with the value.
func (p Part) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			if p.pres == Present {
				fmt.Fprintf(f, "%s(%q)", p.pres, p.val)
			} else {
				fmt.Fprint(f, p.pres.String())
			}
			return
		}
		fmt.Fprint(f, p.val)
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.val))
	default:
		fmt.Fprint(f, p.val)
	}
}

func (p Part) apply(fn func(string) string) Part {
	if p.pres != Present {
		return p
	}
	return PartOf(fn(p.val))
}
