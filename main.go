// Package main is the entry point for the vannabridge application.
// It exposes the Vanna natural-language-to-SQL engine as a gRPC service
// and provides a companion command-line client.
package main

import (
	"vannabridge/service/cmd"
)

// main is the entry point for the vannabridge application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
