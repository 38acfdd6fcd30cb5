package cli

import "github.com/mitchellh/cli"

func command(c cli.Command) cli.CommandFactory {
	return func() (cli.Command, error) { return c, nil }
}

// Commands returns the factories for every sw subcommand.
func Commands(m *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"sanitize":         command(&SanitizeCommand{Meta: m}),
		"words list":       command(&WordsListCommand{Meta: m}),
		"words get":        command(&WordsGetCommand{Meta: m}),
		"words add":        command(&WordsAddCommand{Meta: m}),
		"words update":     command(&WordsUpdateCommand{Meta: m}),
		"words activate":   command(&WordsSetActiveCommand{Meta: m, Active: true}),
		"words deactivate": command(&WordsSetActiveCommand{Meta: m, Active: false}),
		"words delete":     command(&WordsDeleteCommand{Meta: m}),
		"words import":     command(&WordsImportCommand{Meta: m}),
		"stats":            command(&StatsCommand{Meta: m}),
		"stats reset":      command(&StatsResetCommand{Meta: m}),
		"health":           command(&HealthCommand{Meta: m}),
		"metrics":          command(&MetricsCommand{Meta: m}),
	}
}
