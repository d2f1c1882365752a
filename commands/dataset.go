package commands

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/config"
	"github.com/pivotal-cf/pwdkek/corpus"
	"github.com/pivotal-cf/pwdkek/datasets"
	"github.com/pivotal-cf/pwdkek/estimator"
	credlog "github.com/pivotal-cf/pwdkek/log"
	"github.com/pivotal-cf/pwdkek/trie"
)

type DatasetOptions struct {
	Path  string `short:"d" long:"dataset" description:"path to a prepared dataset (default: datasets/rockyou-utf8-filtered-sorted.txt.gz next to the executable)" env:"PWDKEK_DATASET" value-name:"PATH"`
	Index string `long:"index" description:"how prefixes are counted" choice:"sorted" choice:"trie" default:"sorted"`
	Scale string `long:"scale" description:"tier scale" choice:"default" choice:"extended" default:"default"`
	Debug bool   `long:"debug" description:"enables debug logging"`
}

func (o *DatasetOptions) DatasetPath() (string, error) {
	if o.Path != "" {
		return o.Path, nil
	}

	return datasets.DefaultPath()
}

// PrefixCounter loads the dataset and indexes it the requested way.
func (o *DatasetOptions) PrefixCounter(logger lager.Logger) (estimator.PrefixCounter, *corpus.Corpus, error) {
	path, err := o.DatasetPath()
	if err != nil {
		return nil, nil, err
	}

	c, err := corpus.Open(logger, path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading dataset: %w", err)
	}

	if o.Index == config.IndexTrie {
		return trie.Build(logger, alphabet.Default(), c.Entries()), c, nil
	}

	return c, c, nil
}

func (o *DatasetOptions) Estimator(logger lager.Logger) (*estimator.Estimator, error) {
	counter, _, err := o.PrefixCounter(logger)
	if err != nil {
		return nil, err
	}

	return estimator.New(counter, estimator.WithScale(config.ScaleNamed(o.Scale)))
}

func newLogger(component string, debug bool) lager.Logger {
	logger := lager.NewLogger(component)

	if debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	return logger
}

// quietLogger is logger when debugging and a null logger otherwise.
func quietLogger(logger lager.Logger, debug bool) lager.Logger {
	if debug {
		return logger
	}

	return credlog.NewNullLogger()
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `pwdkek update`.")
	}
}
