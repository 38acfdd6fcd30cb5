package cli

import (
	"flag"

	"github.com/mitchellh/cli"
)

var (
	_ cli.Command = &HealthCommand{}
	_ cli.Command = &MetricsCommand{}
)

type HealthCommand struct {
	*Meta
}

func (c *HealthCommand) flags(probe *string) *flag.FlagSet {
	fs := newFlagSet("health")
	fs.StringVar(probe, "probe", "", "Run only the ready (database) or live (api) checks.")
	return fs
}

func (c *HealthCommand) Help() string {
	var probe string
	return Usage("Usage: sw health [-probe ready|live]\n\n  Runs the server health checks.", c.flags(&probe))
}

func (c *HealthCommand) Synopsis() string { return "Show server health" }

func (c *HealthCommand) Run(args []string) int {
	var probe string
	if err := c.flags(&probe).Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return FlagParseError
	}
	if probe != "" && probe != "ready" && probe != "live" {
		c.Ui.Error("-probe must be ready or live")
		return FlagParseError
	}

	rep, err := c.API.Health(c.Ctx, probe)
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(formatHealth(rep))
	if rep.Status != "Healthy" {
		return RunError
	}
	return Success
}

type MetricsCommand struct {
	*Meta
}

func (c *MetricsCommand) Help() string {
	return Usage("Usage: sw metrics\n\n  Shows process metrics of the server.", nil)
}

func (c *MetricsCommand) Synopsis() string { return "Show server process metrics" }

func (c *MetricsCommand) Run([]string) int {
	m, err := c.API.Metrics(c.Ctx)
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(formatMetrics(m))
	return Success
}
