package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/pfx"
)

type InspectCommand struct {
	Model  string `short:"m" long:"model" description:"quantized model to inspect" default:"res.pfx" value-name:"PATH"`
	Prefix string `short:"p" long:"prefix" description:"show the transitions after this prefix" value-name:"PREFIX"`
}

func (command *InspectCommand) Execute(args []string) error {
	file, err := os.Open(command.Model)
	if err != nil {
		return err
	}
	defer file.Close()

	a := alphabet.Default()

	model, err := pfx.Decode(bufio.NewReader(file), a)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", command.Model, err)
	}

	fmt.Println("Records:", model.Records())
	fmt.Println("Depth:", model.Depth())

	weights, ok := model.Transitions(command.Prefix)
	if !ok {
		fmt.Printf("No record for prefix %q\n", command.Prefix)
		return nil
	}

	fmt.Printf("Transitions after %q:\n", command.Prefix)
	for i, w := range weights {
		if w == 0 {
			continue
		}
		c := a.Char(i)
		fmt.Printf("  %c %3d %.4f\n", c, w, model.Weight(command.Prefix, c))
	}

	return nil
}
