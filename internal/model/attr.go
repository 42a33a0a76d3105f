package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Attr names one boolean column. The set is closed: every table variant
// draws its columns from these keys.
type Attr uint8

const (
	AttrActive Attr = iota
	AttrMT4
	AttrMT5
	AttrCTrader
	AttrOrbex
	AttrGBE
	AttrTickmill
	AttrDXFeed
	AttrRithmic
	AttrTradovate
	AttrStocks

	numAttrs
)

var attrNames = [numAttrs]string{
	AttrActive:    "active",
	AttrMT4:       "mt4",
	AttrMT5:       "mt5",
	AttrCTrader:   "ctrader",
	AttrOrbex:     "orbex",
	AttrGBE:       "gbe",
	AttrTickmill:  "tickmill",
	AttrDXFeed:    "dxfeed",
	AttrRithmic:   "rithmic",
	AttrTradovate: "tradovate",
	AttrStocks:    "stocks",
}

var attrLabels = [numAttrs]string{
	AttrActive:    "Active",
	AttrMT4:       "MT4",
	AttrMT5:       "MT5",
	AttrCTrader:   "cTrader",
	AttrOrbex:     "Orbex",
	AttrGBE:       "GBE",
	AttrTickmill:  "Tickmill",
	AttrDXFeed:    "dxFeed",
	AttrRithmic:   "Rithmic",
	AttrTradovate: "Tradovate",
	AttrStocks:    "Stocks",
}

// Valid reports whether a is one of the declared keys.
func (a Attr) Valid() bool { return a < numAttrs }

// String returns the wire key ("mt4", "active", ...).
func (a Attr) String() string {
	if !a.Valid() {
		return fmt.Sprintf("attr(%d)", uint8(a))
	}
	return attrNames[a]
}

// Label is the column header shown to users.
func (a Attr) Label() string {
	if !a.Valid() {
		return a.String()
	}
	return attrLabels[a]
}

// ParseAttr maps a wire key back to its Attr. Matching ignores case.
func ParseAttr(s string) (Attr, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range attrNames {
		if n == s {
			return Attr(i), true
		}
	}
	return 0, false
}

// AttrSet is a fixed-width set of switched-on attributes.
type AttrSet uint16

// Has reports whether a is on.
func (s AttrSet) Has(a Attr) bool {
	if !a.Valid() {
		return false
	}
	return s&(1<<a) != 0
}

// With returns s with a switched on.
func (s AttrSet) With(a Attr) AttrSet {
	if !a.Valid() {
		return s
	}
	return s | 1<<a
}

// Flip returns s with a inverted.
func (s AttrSet) Flip(a Attr) AttrSet {
	if !a.Valid() {
		return s
	}
	return s ^ 1<<a
}

// SetOf builds a set from the given attributes.
func SetOf(attrs ...Attr) AttrSet {
	var s AttrSet
	for _, a := range attrs {
		s = s.With(a)
	}
	return s
}

// MarshalJSON writes the set as {"mt4": true, "mt5": false, ...}. Only
// attributes that are on are emitted; absent keys read back as false.
func (s AttrSet) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool)
	for a := Attr(0); a < numAttrs; a++ {
		if s.Has(a) {
			m[a.String()] = true
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts the object form written by MarshalJSON.
func (s *AttrSet) UnmarshalJSON(b []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("attrs: %w", err)
	}
	var out AttrSet
	for k, v := range m {
		a, ok := ParseAttr(k)
		if !ok {
			return fmt.Errorf("attrs: unknown key %q", k)
		}
		if v {
			out = out.With(a)
		}
	}
	*s = out
	return nil
}

// Schema is the ordered list of attribute columns a list exposes.
type Schema []Attr

// Contains reports whether a is one of the schema's columns.
func (sc Schema) Contains(a Attr) bool {
	for _, x := range sc {
		if x == a {
			return true
		}
	}
	return false
}

// Index returns the column position of a, or -1.
func (sc Schema) Index(a Attr) int {
	for i, x := range sc {
		if x == a {
			return i
		}
	}
	return -1
}

// Restrict drops any attribute in s that is not a column of sc.
func (sc Schema) Restrict(s AttrSet) AttrSet {
	var out AttrSet
	for _, a := range sc {
		if s.Has(a) {
			out = out.With(a)
		}
	}
	return out
}

// MarshalText writes the wire key.
func (a Attr) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("attr: invalid value %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText parses a wire key.
func (a *Attr) UnmarshalText(b []byte) error {
	v, ok := ParseAttr(string(b))
	if !ok {
		return fmt.Errorf("attr: unknown key %q", string(b))
	}
	*a = v
	return nil
}
