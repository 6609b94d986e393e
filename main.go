// cz-config provides the commit type configuration used by commitizen-style commit prompts and checks user input
// against it.
package main

import (
	"os"

	"github.com/s0ders/cz-config/cmd"
	"github.com/s0ders/cz-config/internal/appcontext"
)

func main() {
	ctx := appcontext.New()

	if err := cmd.NewRootCommand(ctx).Execute(); err != nil {
		os.Exit(1)
	}
}
