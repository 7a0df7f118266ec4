// Command pidedit is a terminal editor for piping-and-instrumentation
// diagrams.
package main

import "github.com/tbo47/control-diagram/cmd/pidedit/cmd"

func main() {
	cmd.Execute()
}
