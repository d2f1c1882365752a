package commands

import (
	"bufio"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwdkek/estimator"
	"github.com/pivotal-cf/pwdkek/mimetype"
	"github.com/pivotal-cf/pwdkek/scanners"
	"github.com/pivotal-cf/pwdkek/scanners/filescanner"
	"github.com/pivotal-cf/pwdkek/sniff"
)

type AuditCommand struct {
	DatasetOptions

	File          string `short:"f" long:"file" description:"the file to audit (default: STDIN)" value-name:"FILE"`
	Assignments   bool   `long:"assignments" description:"audit values assigned to password-like keys instead of whole lines"`
	MinTier       string `long:"min-tier" description:"report passwords below this tier" default:"Medium" value-name:"TIER"`
	ShowPasswords bool   `long:"show-weak-passwords" description:"allow weak passwords to be shown in output"`
}

func (command *AuditCommand) Execute(args []string) error {
	warnIfOldExecutable()

	minTier, err := estimator.ParseTier(command.MinTier)
	if err != nil {
		return err
	}

	logger := newLogger("audit", command.Debug)

	est, err := command.Estimator(quietLogger(logger, command.Debug))
	if err != nil {
		return err
	}

	var sniffer sniff.Sniffer
	if command.Assignments {
		sniffer = sniff.NewAssignmentSniffer(est, minTier)
	} else {
		sniffer = sniff.NewLineSniffer(est, minTier)
	}

	handler := newWeakPasswordCounter(command.ShowPasswords)

	if command.File != "" {
		err = command.auditFile(logger, sniffer, handler.HandleViolation)
	} else {
		err = sniffer.Sniff(logger, filescanner.New(os.Stdin, "STDIN"), handler.HandleViolation)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s auditing failed: %s\n", red("[FAILED]"), err)
	}

	if handler.count > 0 {
		fmt.Println()
		fmt.Printf("Found %d password(s) below %s.\n", handler.count, minTier)
		os.Exit(3)
	}

	if err != nil {
		os.Exit(1)
	}

	return nil
}

func (command *AuditCommand) auditFile(logger lager.Logger, sniffer sniff.Sniffer, handleFunc sniff.ViolationHandlerFunc) error {
	logger = logger.Session("audit-file", lager.Data{"file": command.File})
	logger.Debug("starting")
	defer logger.Debug("done")

	file, err := os.Open(command.File)
	if err != nil {
		return err
	}
	defer file.Close()

	br := bufio.NewReader(file)
	mime, err := mimetype.Detect(command.File, br)
	if err != nil {
		return err
	}

	if mime != mimetype.Text {
		return fmt.Errorf("%s is %s, only text files can be audited", command.File, mime)
	}

	return sniffer.Sniff(logger, filescanner.New(br, command.File), handleFunc)
}

func newWeakPasswordCounter(showPasswords bool) *weakPasswordCounter {
	return &weakPasswordCounter{
		showPasswords: showPasswords,
	}
}

type weakPasswordCounter struct {
	count         int
	showPasswords bool
}

func (c *weakPasswordCounter) HandleViolation(logger lager.Logger, violation scanners.Violation) error {
	c.count++

	tier := violation.Estimate.Tier
	output := fmt.Sprintf("%s %s %s", red("[WEAK]"), violation.Location(), tierColor(tier)(tier.String()))
	if c.showPasswords {
		output = output + fmt.Sprintf(" [%s]", violation.Credential())
	}
	fmt.Println(output)

	logger.Debug("weak-password-found", lager.Data{
		"location": violation.Location(),
		"tier":     tier.String(),
		"count":    c.count,
	})

	return nil
}
