// cmd/portal/main.go
package main

import (
	"os"

	"scholar-portal/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
