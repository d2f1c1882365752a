package commands

import (
	"fmt"
	"strings"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/corpus"
	"github.com/pivotal-cf/pwdkek/datasets"
)

type PrepareCommand struct {
	Input  string `short:"i" long:"input" description:"raw password list, plain text or gzip" required:"true" value-name:"PATH"`
	Output string `short:"o" long:"output" description:"where to write the prepared dataset" required:"true" value-name:"PATH"`
	Debug  bool   `long:"debug" description:"enables debug logging"`
}

func (command *PrepareCommand) Execute(args []string) error {
	logger := newLogger("prepare", command.Debug)

	rc, err := corpus.OpenReader(logger, command.Input)
	if err != nil {
		return err
	}
	defer rc.Close()

	lines, err := corpus.Read(logger, rc)
	if err != nil {
		return err
	}

	for i, line := range lines {
		lines[i] = strings.ToValidUTF8(line, "")
	}

	entries := corpus.Prepare(lines, alphabet.Default())
	if err := datasets.Install(command.Output, entries); err != nil {
		return err
	}

	fmt.Printf("%s kept %d of %d lines in %s\n", green("[DONE]"), len(entries), len(lines), command.Output)
	return nil
}
