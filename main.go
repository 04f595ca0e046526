package main

import (
	"fmt"
	"os"

	"wwilson/ops-scripts/cmd/anz"
	"wwilson/ops-scripts/cmd/boilerplate"
	"wwilson/ops-scripts/cmd/configcmd"
	"wwilson/ops-scripts/cmd/rangereport"
	"wwilson/ops-scripts/cmd/root"
	"wwilson/ops-scripts/internal/config"
)

func init() {
	// .env must be applied before viper reads OPS_ variables.
	config.LoadEnv()

	root.Cmd.AddCommand(anz.Cmd)
	root.Cmd.AddCommand(rangereport.Cmd)
	root.Cmd.AddCommand(boilerplate.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Exiting script with errors:", err)
		os.Exit(1)
	}
}
