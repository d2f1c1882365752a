package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pwdkek/estimator"
)

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")

func tierColor(tier estimator.Tier) func(string) string {
	switch {
	case tier <= estimator.Low:
		return red
	case tier == estimator.Medium:
		return yellow
	default:
		return green
	}
}
