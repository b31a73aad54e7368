package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	autochessmcp "github.com/peterkuimelis/autochess/internal/mcp"
)

func main() {
	s := server.NewMCPServer("autochess", "1.0.0")
	autochessmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
