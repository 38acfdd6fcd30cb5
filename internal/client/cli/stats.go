package cli

import (
	"strings"

	"github.com/mitchellh/cli"
)

var (
	_ cli.Command = &StatsCommand{}
	_ cli.Command = &StatsResetCommand{}
)

type StatsCommand struct {
	*Meta
}

func (c *StatsCommand) Help() string {
	return Usage(`Usage: sw stats [operation]

  Shows how many times each operation ran. The optional operation is one of
  CREATE, READ, UPDATE, DELETE or SANITIZE.`, nil)
}

func (c *StatsCommand) Synopsis() string { return "Show operation statistics" }

func (c *StatsCommand) Run(args []string) int {
	if len(args) > 1 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}

	var op string
	if len(args) == 1 {
		op = strings.ToUpper(strings.TrimSpace(args[0]))
	}

	stats, err := c.API.Stats(c.Ctx, op)
	if err != nil {
		return c.fail(err)
	}
	if len(stats) == 0 {
		c.Ui.Info("No statistics.")
		return Success
	}
	c.Ui.Output(formatStats(stats))
	return Success
}

type StatsResetCommand struct {
	*Meta
}

func (c *StatsResetCommand) Help() string {
	return Usage("Usage: sw stats reset\n\n  Sets every operation counter back to zero.", nil)
}

func (c *StatsResetCommand) Synopsis() string { return "Reset operation statistics" }

func (c *StatsResetCommand) Run(args []string) int {
	if len(args) != 0 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}
	msg, err := c.API.ResetStats(c.Ctx)
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(msg)
	return Success
}
