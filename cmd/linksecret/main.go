// filepath: cmd/linksecret/main.go
package main

import (
	"linksecret/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
