// Command numsys converts integers between number systems.
//
// Usage:
//
//	numsys [flags] [SRC=DEST] [SRC=DEST] INPUT
//
// Each side of a conversion argument is a base from 1 to 36 or one of the
// notation tokens ns, sp, 1c and 2c. The left side describes INPUT and the
// right side the output. Either side may be empty. Without conversion
// arguments INPUT is read and written in base 10 with a negative sign.
//
//	numsys 10=2 -12         # -1100
//	numsys 10=2 ns=2c -12   # 10100
//	numsys -u 16=10 ffff    # 65535
//
// Defaults are read from $XDG_CONFIG_HOME/numsys/config.toml when it exists.
// The result is written to standard output and errors to standard error with
// exit status 1.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
