// Package entropy scores passwords with zxcvbn's pattern rules. The score is
// shown next to the corpus estimate for comparison.
package entropy

import "github.com/nbutton23/zxcvbn-go"

type Baseline struct {
	Entropy float64
	// Score is zxcvbn's 0 to 4 rating.
	Score int
	// CrackTime is zxcvbn's own estimate in seconds.
	CrackTime float64
}

func Estimate(password string, userInputs ...string) Baseline {
	match := zxcvbn.PasswordStrength(password, userInputs)

	return Baseline{
		Entropy:   match.Entropy,
		Score:     match.Score,
		CrackTime: match.CrackTime,
	}
}

// PerCharacter is the baseline entropy divided by the password length.
func PerCharacter(password string) float64 {
	if len(password) == 0 {
		return 0
	}

	return Estimate(password).Entropy / float64(len(password))
}

// IsRandomLooking reports whether the password has the per-character entropy
// of generated secrets rather than chosen ones.
func IsRandomLooking(password string) bool {
	return PerCharacter(password) > 3.7
}
