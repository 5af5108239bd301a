package gosm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

const chartFieldCount = 6

var noteTypes = map[rune]NoteType{
	'0': NoteNone,
	'1': NoteNormal,
	'2': NoteHoldHead,
	'3': NoteHoldOrRollTail,
	'4': NoteRollHead,
	'M': NoteMine,
	'K': NoteAutomaticKeysound,
	'L': NoteLift,
	'F': NoteFake,
}

// parseChart decodes a NOTES value:
// type:author:difficulty:meter:radar values:note data
func parseChart(value *string) (Chart, error) {
	var chart Chart
	if value == nil {
		return chart, ErrEmptyNotesSection
	}

	parts := strings.Split(strings.TrimSpace(*value), ":")
	if len(parts) != chartFieldCount {
		return chart, fmt.Errorf("%w: %d fields, want %d", ErrInvalidChartFormat, len(parts), chartFieldCount)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	chart.Type = parts[0]
	if parts[1] != "" {
		author := parts[1]
		chart.Author = &author
	}

	difficulty, ok := parseDifficulty(parts[2])
	if !ok {
		return chart, fmt.Errorf("%w: %q", ErrUnknownChartDifficulty, parts[2])
	}
	chart.Difficulty = difficulty

	meter, err := strconv.ParseUint(parts[3], 10, 16)
	if err != nil {
		return chart, fmt.Errorf("%w: %q", ErrFailedToParseChartMeter, parts[3])
	}
	chart.Meter = uint16(meter)

	chart.RadarValues = parseRadarValues(parts[4])
	chart.Measures = parseNoteData(parts[5])
	return chart, nil
}

func parseDifficulty(s string) (Difficulty, bool) {
	for i, name := range difficultyNames {
		if s == name {
			return Difficulty(i), true
		}
	}
	return 0, false
}

// parseRadarValues never fails; unreadable values become 0.
func parseRadarValues(s string) []float64 {
	values := make([]float64, 0)
	for _, raw := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			Logger().Debug("radar value defaulted to 0", zap.String("value", raw))
			f = 0
		}
		values = append(values, f)
	}
	return values
}

// parseNoteData splits the grid into measures on ',' and decodes every
// non-whitespace character into a cell, keeping row-major order.
func parseNoteData(s string) []Measure {
	rawMeasures := strings.Split(s, ",")
	measures := make([]Measure, 0, len(rawMeasures))
	for _, raw := range rawMeasures {
		measure := make(Measure, 0, len(raw))
		for _, line := range strings.Split(raw, "\n") {
			for _, r := range stripComment(line) {
				if unicode.IsSpace(r) {
					continue
				}
				note, ok := noteTypes[r]
				if !ok {
					Logger().Debug("invalid note", zap.String("char", string(r)))
					note = NoteInvalid
				}
				measure = append(measure, note)
			}
		}
		measures = append(measures, measure)
	}
	return measures
}
