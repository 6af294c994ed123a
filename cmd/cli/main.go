package main

import (
	"fmt"
	"os"

	"github.com/marcelsud/library-console/config"
	"github.com/marcelsud/library-console/internal/console"
)

// https://eltonminetto.dev/post/2022-07-06-error-handling-cli-applications-golang/
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app, err := console.New(cfg, "library-console-cli")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = newRootCmd(app.Service, os.Stdout).Execute()
	app.Close()
	if err != nil {
		os.Exit(1)
	}
}
