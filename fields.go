package gosm

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func parseFloat(value *string) *float64 {
	if value == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		Logger().Debug("ignoring malformed number", zap.String("value", *value), zap.Error(err))
		return nil
	}
	return &f
}

func parseBool(value *string) *bool {
	if value == nil {
		return nil
	}
	var b bool
	switch *value {
	case "YES":
		b = true
	case "NO":
		b = false
	default:
		return nil
	}
	return &b
}

// splitListEntries splits a comma separated list into trimmed entries. A single
// trailing comma is allowed; any other blank entry is kept so the caller rejects it.
func splitListEntries(value string) []string {
	entries := strings.Split(value, ",")
	for i := range entries {
		entries[i] = strings.TrimSpace(entries[i])
	}
	if n := len(entries); n > 1 && entries[n-1] == "" {
		entries = entries[:n-1]
	}
	return entries
}

// parseBeatValuePairs reads the "beat=value,beat=value" list shared by BPMS and STOPS.
// Any malformed entry fails the whole list with errKind.
func parseBeatValuePairs(value *string, errKind error) ([][2]float64, error) {
	pairs := make([][2]float64, 0)
	if value == nil {
		return pairs, nil
	}
	for _, entry := range splitListEntries(*value) {
		parts := strings.Split(entry, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", errKind, entry)
		}
		var pair [2]float64
		for i, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errKind, entry)
			}
			pair[i] = f
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func parseBPMs(value *string) ([]BPM, error) {
	pairs, err := parseBeatValuePairs(value, ErrFailedToParseBPMs)
	if err != nil {
		return nil, err
	}
	bpms := make([]BPM, 0, len(pairs))
	for _, p := range pairs {
		bpms = append(bpms, BPM{Beat: p[0], BPM: p[1]})
	}
	return bpms, nil
}

func parseStops(value *string) ([]Stop, error) {
	pairs, err := parseBeatValuePairs(value, ErrFailedToParseStops)
	if err != nil {
		return nil, err
	}
	stops := make([]Stop, 0, len(pairs))
	for _, p := range pairs {
		stops = append(stops, Stop{Beat: p[0], Duration: p[1]})
	}
	return stops, nil
}

// parseDisplayBPM reads "x", "min:max" or a non-numeric marker such as "*" (random).
func parseDisplayBPM(value *string) (*DisplayBPM, error) {
	if value == nil {
		return nil, nil
	}
	tokens := strings.Split(*value, ":")
	switch len(tokens) {
	case 1:
		f, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
		if err != nil {
			return &DisplayBPM{Type: DisplayBPMRandom}, nil
		}
		return &DisplayBPM{Type: DisplayBPMSingle, Min: f, Max: f}, nil
	case 2:
		low, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrFailedToParseDisplayBPM, *value)
		}
		high, err := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrFailedToParseDisplayBPM, *value)
		}
		return &DisplayBPM{Type: DisplayBPMRange, Min: low, Max: high}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrTooManyValuesInDisplayBPM, *value)
	}
}
