package tilemap

import (
	"fmt"
	"strings"
)

// Policy selects how a Map scrolls.
type Policy int

const (
	// Static never scrolls.
	Static Policy = iota
	// WindowedConveyor shifts the window by a fixed number of rows and
	// columns per step, pulling the top rows and right columns from the
	// backing sequence. Evicted columns can be kept in a trail grid.
	WindowedConveyor
	// StatelessDiagonal moves the window one column per step and one row
	// every RowPeriod steps. Its state at any frame can be computed
	// directly without replaying earlier steps.
	StatelessDiagonal
)

var policyNames = map[Policy]string{
	Static:            "static",
	WindowedConveyor:  "conveyor",
	StatelessDiagonal: "diagonal",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Static, fmt.Errorf("tilemap: unknown policy %q", s)
}
