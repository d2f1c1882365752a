package estimator

import (
	"fmt"
	"strings"
)

type Tier int

const (
	Pathetic Tier = iota
	Low
	Medium
	High
	Extreme
	UltraExtreme
)

var tierNames = map[Tier]string{
	Pathetic:     "Pathetic",
	Low:          "Low",
	Medium:       "Medium",
	High:         "High",
	Extreme:      "Extreme",
	UltraExtreme: "Ultra-Extreme",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func ParseTier(name string) (Tier, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for tier, tierName := range tierNames {
		if strings.ToLower(strings.Replace(tierName, "-", "", -1)) == normalized {
			return tier, nil
		}
	}

	return 0, fmt.Errorf("unknown tier %q", name)
}

// Year is the baseline of the tier thresholds.
const Year = 365 * Day

// Scale maps a time to decode to a tier. Thresholds ascend; the first one
// strictly greater than the time selects the tier at the same position.
// Past the last threshold the next tier is used and Unbounded always maps to
// Top.
type Scale struct {
	Tiers      []Tier
	Thresholds []Seconds
	Top        Tier
}

var thresholds = []Seconds{
	Year / 100,
	Year / 10,
	Year,
	10 * Year,
}

// DefaultScale has five tiers: a few days, a month, a year, ten years and
// beyond.
var DefaultScale = Scale{
	Tiers:      []Tier{Pathetic, Low, Medium, High, Extreme},
	Thresholds: thresholds,
	Top:        Extreme,
}

// ExtendedScale keeps the same thresholds and reserves UltraExtreme for
// attempt counts past 64 bits.
var ExtendedScale = Scale{
	Tiers:      []Tier{Pathetic, Low, Medium, High, Extreme, UltraExtreme},
	Thresholds: thresholds,
	Top:        UltraExtreme,
}

func (s Scale) Classify(ttd Seconds) Tier {
	if ttd.Unbounded() {
		return s.Top
	}

	for i, threshold := range s.Thresholds {
		if ttd < threshold {
			return s.Tiers[i]
		}
	}

	return s.Tiers[len(s.Thresholds)]
}
