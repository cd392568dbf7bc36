//go:build go1.18
// +build go1.18

package eqsolve_test

import (
	"testing"

	"github.com/zephyrtronium/eqsolve"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("-1(10+5^2)((5*-2)+9-3^3)/2")
	f.Add("((1,5")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := eqsolve.Parse(s)
		if err != nil {
			return
		}
		// Resolving again must not change anything.
		before := a.String()
		if after := eqsolve.Resolve(a).String(); after != before {
			t.Errorf("%q: re-resolving changed %s to %s", s, before, after)
		}
	})
}
