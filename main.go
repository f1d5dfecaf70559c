// Command img2pdf converts images into a single multi-page PDF.
package main

import (
	"os"

	"github.com/gaurav-prasanna/img2pdf/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
