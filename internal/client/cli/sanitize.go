package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/mitchellh/cli"
)

var _ cli.Command = &SanitizeCommand{}

type SanitizeCommand struct {
	*Meta
}

func (c *SanitizeCommand) Help() string {
	return Usage(`Usage: sw sanitize [message]

  Masks every active sensitive word in the message. With no argument the
  message is read from standard input, which must not be a terminal.`, nil)
}

func (c *SanitizeCommand) Synopsis() string {
	return "Mask sensitive words in a message"
}

func (c *SanitizeCommand) Run(args []string) int {
	message, err := c.message(args)
	if err != nil {
		c.Ui.Error(err.Error())
		c.Ui.Error(c.Help())
		return FlagParseError
	}

	res, err := c.API.Sanitize(c.Ctx, message)
	if err != nil {
		return c.fail(err)
	}

	c.Ui.Output(res.SanitizedMessage)
	c.Ui.Info("words replaced: " + itoa(res.WordsReplaced))
	return Success
}

func (c *SanitizeCommand) message(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if c.Stdin == nil || c.stdinIsTerminal() {
		return "", errors.New("a message argument is required")
	}
	data, err := io.ReadAll(c.Stdin)
	if err != nil {
		return "", err
	}
	msg := strings.TrimRight(string(data), "\r\n")
	if msg == "" {
		return "", errors.New("standard input is empty")
	}
	return msg, nil
}
