package estimator

import (
	"fmt"
	"math"
)

// Seconds is a time to decode.
type Seconds float64

const (
	Second Seconds = 1
	Minute         = 60 * Second
	Hour           = 60 * Minute
	Day            = 24 * Hour
)

// AttemptCost is the assumed time per guess: 10^8 guesses per second.
const AttemptCost = 10e-9 * Second

// Unbounded stands for an attempt count that overflows 64 bits.
var Unbounded = Seconds(math.Inf(1))

func (s Seconds) Unbounded() bool {
	return math.IsInf(float64(s), 1)
}

// TimeToDecode converts entropy bits into the time needed for 2^entropy
// guesses. The integer part of the exponent is applied by doubling with an
// overflow check, the fractional part afterwards. ok is false when the attempt
// count does not fit in a uint64, in which case Unbounded is returned.
func TimeToDecode(entropy float64) (ttd Seconds, ok bool) {
	if math.IsNaN(entropy) || math.IsInf(entropy, 0) {
		return Unbounded, false
	}

	if entropy < 0 {
		entropy = 0
	}

	whole, frac := math.Modf(entropy)

	attempts := uint64(1)
	for i := 0.0; i < whole; i++ {
		if attempts > math.MaxUint64/2 {
			return Unbounded, false
		}
		attempts *= 2
	}

	return Seconds(float64(attempts)*math.Exp2(frac)) * AttemptCost, true
}

// FormatTimeToDecode renders ttd as years, days, hours, minutes and seconds.
func FormatTimeToDecode(ttd Seconds) string {
	if ttd.Unbounded() {
		return "Uncountable number of years"
	}

	total := uint64(ttd)

	days := total / uint64(Day)
	rest := total % uint64(Day)

	hours := rest / uint64(Hour)
	rest %= uint64(Hour)
	minutes := rest / uint64(Minute)
	seconds := rest % uint64(Minute)

	return fmt.Sprintf("%d years %d days %d hours %d minutes %d seconds",
		days/365, days%365, hours, minutes, seconds)
}
