package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pivotal-cf/pwdkek/entropy"
	"github.com/pivotal-cf/pwdkek/estimator"
)

type EstimateCommand struct {
	DatasetOptions

	Baseline bool `long:"baseline" description:"also show the zxcvbn entropy"`

	Args struct {
		Passwords []string `positional-arg-name:"PASSWORD"`
	} `positional-args:"yes"`
}

func (command *EstimateCommand) Execute(args []string) error {
	logger := newLogger("estimate", command.Debug)

	est, err := command.Estimator(quietLogger(logger, command.Debug))
	if err != nil {
		return err
	}

	if len(command.Args.Passwords) > 0 {
		failed := false
		for i, password := range command.Args.Passwords {
			if i > 0 {
				fmt.Println()
			}
			if err := command.show(os.Stdout, est, password); err != nil {
				fmt.Fprintln(os.Stderr, red("[FAILED]"), err)
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter a password: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		if scanner.Text() == "" {
			return nil
		}

		if err := command.show(os.Stdout, est, scanner.Text()); err != nil {
			fmt.Println(err)
		}
		fmt.Println()
	}
}

func (command *EstimateCommand) show(w io.Writer, est *estimator.Estimator, password string) error {
	estimate, err := est.Estimate(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Password entropy:", estimate.Entropy)
	fmt.Fprintln(w, "Time to decode:", estimator.FormatTimeToDecode(estimate.TimeToDecode))
	fmt.Fprintln(w, "Tier:", tierColor(estimate.Tier)(estimate.Tier.String()))

	if command.Baseline {
		baseline := entropy.Estimate(password)
		fmt.Fprintf(w, "Baseline entropy (zxcvbn): %g, score %d/4\n", baseline.Entropy, baseline.Score)
		fmt.Fprintf(w, "Baseline entropy per character: %.2f\n", entropy.PerCharacter(password))
		if entropy.IsRandomLooking(password) {
			fmt.Fprintln(w, yellow("[NOTE]"), "looks randomly generated, the corpus estimate may be pessimistic")
		}
	}

	return nil
}
