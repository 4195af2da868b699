// Package details builds the one-line summary shown for the selected profile.
package details

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ksts/profileselector/pkg/core"
)

// Mode selects which detail accompanies the selected profile's name.
type Mode string

const (
	ModeAltitude Mode = "altitude"
	ModePayload  Mode = "payload"
)

// ParseMode converts a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAltitude, ModePayload:
		return m, nil
	default:
		return "", fmt.Errorf("unknown details mode: %q", s)
	}
}

// Formatters turn raw profile values into display text. They are supplied
// by the caller; this package only decides where they are used.
type Formatters interface {
	Altitude(meters float64) string
	Duration(seconds float64) string
	DockingPort(portType string) string
}

// DefaultFormatters formats with SI prefixes and Go durations and leaves
// docking port identifiers untranslated.
type DefaultFormatters struct{}

func (DefaultFormatters) Altitude(meters float64) string {
	return humanize.SIWithDigits(meters, 1, "m")
}

func (DefaultFormatters) Duration(seconds float64) string {
	return (time.Duration(seconds * float64(time.Second))).Round(time.Second).String()
}

func (DefaultFormatters) DockingPort(portType string) string {
	return portType
}

// Summary describes a selected profile.
type Summary struct {
	ProfileName  string
	Detail       string
	Duration     string
	DockingPorts string
	CostPerTon   string
}

// Summarize describes p for display next to its name.
func Summarize(p core.MissionProfile, mode Mode, f Formatters) Summary {
	if f == nil {
		f = DefaultFormatters{}
	}

	s := Summary{
		ProfileName:  p.ProfileName,
		Detail:       "N/A",
		Duration:     f.Duration(p.MissionDuration),
		DockingPorts: "N/A",
		CostPerTon:   humanize.Comma(int64(math.Round(p.CostPerTon()))),
	}

	switch mode {
	case ModeAltitude:
		s.Detail = "Max Altitude: " + f.Altitude(p.MaxAltitude)
	case ModePayload:
		s.Detail = fmt.Sprintf("Max Payload: %.2ft", p.PayloadMass)
	}

	if len(p.DockingPortTypes) > 0 {
		names := make([]string, 0, len(p.DockingPortTypes))
		for _, port := range p.DockingPortTypes {
			names = append(names, f.DockingPort(port))
		}
		s.DockingPorts = strings.Join(names, ", ")
	}

	return s
}

// String renders the summary as "<name> (<detail>)".
func (s Summary) String() string {
	return fmt.Sprintf("%s (%s)", s.ProfileName, s.Detail)
}
