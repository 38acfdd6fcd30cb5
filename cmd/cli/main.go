package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sensitivewords/internal/client/cli"
	"github.com/dmitrijs2005/sensitivewords/internal/client/client"
	"github.com/dmitrijs2005/sensitivewords/internal/client/config"
	"github.com/dmitrijs2005/sensitivewords/internal/flagx"
	mcli "github.com/mitchellh/cli"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	_, args := flagx.SplitArgs(os.Args[1:], config.GlobalFlags)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.FlagParseError
	}

	api, err := client.NewHTTPClient(cfg.ServerURL, cfg.Timeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.FlagParseError
	}

	ui := &mcli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := mcli.NewCLI("sw", "1.0.0")
	c.Args = args
	c.Commands = cli.Commands(&cli.Meta{
		Ctx:   context.Background(),
		Ui:    ui,
		API:   api,
		Stdin: os.Stdin,
	})

	code, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return code
}
