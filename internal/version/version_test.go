// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package version

import (
	"testing"
)

func TestGetUserAgent(t *testing.T) {
	testDefs := []struct {
		version  string
		expected string
	}{
		{version: "", expected: "/curiumd:devel(regtest)/"},
		{version: "0.3.0", expected: "/curiumd:0.3.0(regtest)/"},
	}
	for _, td := range testDefs {
		Version = td.version
		if got := GetUserAgent("curiumd", "regtest"); got != td.expected {
			t.Fatalf("got: %s wanted: %s", got, td.expected)
		}
	}
	Version = ""
}
