// Command highlight inspects highlight label descriptions: it lays the label
// out, lists its links and accessibility elements, and simulates taps.
package main

import (
	"os"

	"github.com/pureui/highlight/cmd/highlight/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
