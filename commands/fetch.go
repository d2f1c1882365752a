package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/datasets"
)

type FetchCommand struct {
	Dir        string        `long:"dir" description:"dataset directory (default: datasets next to the executable)" value-name:"PATH"`
	Timeout    time.Duration `long:"timeout" description:"download timeout" default:"30m"`
	Debug      bool          `long:"debug" description:"enables debug logging"`
	Positional struct {
		Dataset string `positional-arg-name:"DATASET" description:"small or big" default:"small"`
	} `positional-args:"yes"`
}

func (command *FetchCommand) Execute(args []string) error {
	logger := newLogger("fetch", command.Debug)

	name := command.Positional.Dataset
	if name == "" {
		name = datasets.Small.Name
	}

	d, err := datasets.Lookup(name)
	if err != nil {
		return err
	}

	dir := command.Dir
	if dir == "" {
		dir, err = datasets.DefaultDir()
		if err != nil {
			return err
		}
	}

	fmt.Printf("Fetching %s from %s...\n", d.Name, d.URL)

	fetcher := datasets.NewFetcher(&http.Client{Timeout: command.Timeout}, alphabet.Default())
	n, err := fetcher.Fetch(logger, d, dir)
	if err != nil {
		fmt.Println(red("[FAILED]"))
		return err
	}

	fmt.Printf("%s %d passwords in %s\n", green("[DONE]"), n, d.Path(dir))
	return nil
}
