package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jmcavoy/breach/internal/config"
	breachmcp "github.com/jmcavoy/breach/internal/mcp"
)

func main() {
	configFile := flag.String("config", "", "path to balance YAML (defaults used if empty)")
	flag.Parse()

	balance := config.FromEnv()
	if *configFile != "" {
		var err error
		balance, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	breachmcp.SetBalance(balance)

	s := server.NewMCPServer("breach", "1.0.0")
	breachmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
