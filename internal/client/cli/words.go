package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sensitivewords/internal/client/client"
	"github.com/dmitrijs2005/sensitivewords/internal/server/seed"
	"github.com/mitchellh/cli"
	"github.com/mitchellh/go-homedir"
)

var (
	_ cli.Command = &WordsListCommand{}
	_ cli.Command = &WordsGetCommand{}
	_ cli.Command = &WordsAddCommand{}
	_ cli.Command = &WordsUpdateCommand{}
	_ cli.Command = &WordsSetActiveCommand{}
	_ cli.Command = &WordsDeleteCommand{}
	_ cli.Command = &WordsImportCommand{}
)

type WordsListCommand struct {
	*Meta
}

func (c *WordsListCommand) flags(active *bool) *flag.FlagSet {
	fs := newFlagSet("words list")
	fs.BoolVar(active, "active", false, "Only list words that are currently used for sanitizing.")
	return fs
}

func (c *WordsListCommand) Help() string {
	var active bool
	return Usage("Usage: sw words list [-active]\n\n  Lists the registered sensitive words.", c.flags(&active))
}

func (c *WordsListCommand) Synopsis() string { return "List sensitive words" }

func (c *WordsListCommand) Run(args []string) int {
	var active bool
	if err := c.flags(&active).Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return FlagParseError
	}

	words, err := c.API.ListWords(c.Ctx, active)
	if err != nil {
		return c.fail(err)
	}
	if len(words) == 0 {
		c.Ui.Info("No sensitive words.")
		return Success
	}
	c.Ui.Output(formatWords(words))
	return Success
}

type WordsGetCommand struct {
	*Meta
}

func (c *WordsGetCommand) Help() string {
	return Usage("Usage: sw words get <id>\n\n  Shows a single sensitive word.", nil)
}

func (c *WordsGetCommand) Synopsis() string { return "Show a sensitive word" }

func (c *WordsGetCommand) Run(args []string) int {
	if len(args) != 1 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}

	w, err := c.API.GetWord(c.Ctx, args[0])
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(formatWord(w))
	return Success
}

type WordsAddCommand struct {
	*Meta
}

func (c *WordsAddCommand) Help() string {
	return Usage(`Usage: sw words add <word>

  Registers a new sensitive word. The word is trimmed and upper-cased by the
  server; several arguments are joined into one phrase.`, nil)
}

func (c *WordsAddCommand) Synopsis() string { return "Register a sensitive word" }

func (c *WordsAddCommand) Run(args []string) int {
	if len(args) == 0 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}

	id, err := c.API.CreateWord(c.Ctx, strings.Join(args, " "))
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(id)
	return Success
}

type WordsUpdateCommand struct {
	*Meta
}

func (c *WordsUpdateCommand) flags(word *string, active *string) *flag.FlagSet {
	fs := newFlagSet("words update")
	fs.StringVar(word, "word", "", "New text of the word.")
	fs.StringVar(active, "active", "", "Set to true or false to change whether the word is used for sanitizing.")
	return fs
}

func (c *WordsUpdateCommand) Help() string {
	var word, active string
	return Usage("Usage: sw words update [options] <id>\n\n  Changes the text and/or the active flag of a word.", c.flags(&word, &active))
}

func (c *WordsUpdateCommand) Synopsis() string { return "Update a sensitive word" }

func (c *WordsUpdateCommand) Run(args []string) int {
	var word, active string
	fs := c.flags(&word, &active)
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return FlagParseError
	}
	if fs.NArg() != 1 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}

	var upd client.WordUpdate
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "word" {
			upd.Word = &word
		}
	})
	if active != "" {
		v, err := strconv.ParseBool(active)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("invalid -active value %q", active))
			return FlagParseError
		}
		upd.IsActive = &v
	}
	if upd.Word == nil && upd.IsActive == nil {
		c.Ui.Error("nothing to update: pass -word and/or -active")
		return FlagParseError
	}

	if err := c.API.UpdateWord(c.Ctx, fs.Arg(0), upd); err != nil {
		return c.fail(err)
	}
	c.Ui.Info("Updated.")
	return Success
}

// WordsSetActiveCommand serves both "words activate" and "words deactivate".
type WordsSetActiveCommand struct {
	*Meta
	Active bool
}

func (c *WordsSetActiveCommand) verb() string {
	if c.Active {
		return "activate"
	}
	return "deactivate"
}

func (c *WordsSetActiveCommand) Help() string {
	return Usage(fmt.Sprintf("Usage: sw words %s <id>", c.verb()), nil)
}

func (c *WordsSetActiveCommand) Synopsis() string {
	if c.Active {
		return "Use a word for sanitizing again"
	}
	return "Stop using a word for sanitizing"
}

func (c *WordsSetActiveCommand) Run(args []string) int {
	if len(args) != 1 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}
	if err := c.API.SetActive(c.Ctx, args[0], c.Active); err != nil {
		return c.fail(err)
	}
	c.Ui.Info("Done.")
	return Success
}

type WordsDeleteCommand struct {
	*Meta
}

func (c *WordsDeleteCommand) Help() string {
	return Usage("Usage: sw words delete <id>", nil)
}

func (c *WordsDeleteCommand) Synopsis() string { return "Delete a sensitive word" }

func (c *WordsDeleteCommand) Run(args []string) int {
	if len(args) != 1 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}
	if err := c.API.DeleteWord(c.Ctx, args[0]); err != nil {
		return c.fail(err)
	}
	c.Ui.Info("Deleted.")
	return Success
}

type WordsImportCommand struct {
	*Meta
}

func (c *WordsImportCommand) Help() string {
	return Usage(`Usage: sw words import [file]

  Registers every word listed in file, one per line. Blank lines and lines
  starting with # are ignored, as are words that already exist. Without a
  file the list is read from standard input.`, nil)
}

func (c *WordsImportCommand) Synopsis() string { return "Import sensitive words from a file" }

func (c *WordsImportCommand) Run(args []string) int {
	if len(args) > 1 {
		c.Ui.Error(c.Help())
		return FlagParseError
	}

	r, closeFn, err := c.open(args)
	if err != nil {
		c.Ui.Error(err.Error())
		return FlagParseError
	}
	defer closeFn()

	words, err := seed.ParseWords(r)
	if err != nil {
		return c.fail(err)
	}
	if len(words) == 0 {
		c.Ui.Info("Nothing to import.")
		return Success
	}

	n, err := c.API.ImportWords(c.Ctx, words)
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(fmt.Sprintf("Imported %d of %d words.", n, len(words)))
	return Success
}

func (c *WordsImportCommand) open(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		if c.Stdin == nil || c.stdinIsTerminal() {
			return nil, nil, errors.New("a file argument is required when standard input is a terminal")
		}
		return c.Stdin, func() {}, nil
	}

	path, err := homedir.Expand(args[0])
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
