package commands

import (
	"bytes"
	"fmt"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/apply"
	"github.com/pivotal-cf/pwdkek/corpus"
	"github.com/pivotal-cf/pwdkek/datasets"
	"github.com/pivotal-cf/pwdkek/pfx"
	"github.com/pivotal-cf/pwdkek/trie"
)

type CompactCommand struct {
	Path   string `short:"d" long:"dataset" description:"path to a prepared dataset (default: datasets/rockyou-utf8-filtered-sorted.txt.gz next to the executable)" env:"PWDKEK_DATASET" value-name:"PATH"`
	Output string `short:"o" long:"output" description:"where to write the quantized model" default:"res.pfx" value-name:"PATH"`
	Debug  bool   `long:"debug" description:"enables debug logging"`
}

func (command *CompactCommand) Execute(args []string) error {
	logger := newLogger("compact", command.Debug)

	path := command.Path
	if path == "" {
		var err error
		path, err = datasets.DefaultPath()
		if err != nil {
			return err
		}
	}

	rc, err := corpus.OpenReader(logger, path)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	defer rc.Close()

	logger = logger.Session("build", lager.Data{"dataset": path})
	logger.Info("starting")

	builder := trie.NewBuilder(alphabet.Default())
	lines, err := builder.ReadFrom(logger, rc)
	if err != nil {
		return err
	}

	model := builder.Freeze()

	var buf bytes.Buffer
	n, err := pfx.Write(model, &buf)
	if err != nil {
		return err
	}

	if err := apply.File(command.Output, &buf, 0644); err != nil {
		logger.Error("install-failed", err)
		return err
	}

	logger.Info("done", lager.Data{"lines": lines, "nodes": model.Len(), "bytes": n})
	fmt.Printf("%s wrote %d bytes to %s\n", green("[DONE]"), n, command.Output)

	return nil
}
