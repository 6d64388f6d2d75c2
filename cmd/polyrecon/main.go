// SPDX-License-Identifier: MIT

// Command polyrecon reconstructs a polynomial from redundant encoded samples
// and prints its value at x=0 and its coefficients.
//
// Usage:
//
//	polyrecon [flags] FILE...
//
// Flags:
//
//	--zero-policy   legacy-truthy | accept-zero (default: legacy-truthy)
//	--duplicates    reject | keep-last (default: reject)
//	--secret-scope  all | basis (default: all)
//	--cross-check   re-solve the basis as a Vandermonde system
//	--residual-tolerance  |f(x) - y| above which a sample is mismatched (default: 0.5)
//	-o, --output    text | json (default: text)
//	--log-level     debug | info | warn | error (default: info)
//	--config        optional config file; POLYRECON_* env vars also apply
package main

import (
	"os"

	"github.com/katalvlaran/polyrecon/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
