package gosm

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	bgChangeMinFields = 6
	fgChangeMinFields = 2
)

// splitChangeEntries drops comments line by line, joins the lines and splits
// the result into comma separated entries.
func splitChangeEntries(value string) []string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(stripComment(line), "\r")
	}
	return splitListEntries(strings.Join(lines, ""))
}

// parseBgChanges is all or nothing: one bad entry rejects the directive.
func parseBgChanges(value *string) ([]BgChange, error) {
	changes := make([]BgChange, 0)
	if value == nil {
		return changes, nil
	}
	for _, entry := range splitChangeEntries(*value) {
		change, err := parseBgChange(entry)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// parseBgChange reads beat=file=rate=fadelast=rewindmovie=loop, optionally
// followed by effect=file2=transition=color1=color2.
func parseBgChange(entry string) (BgChange, error) {
	var change BgChange
	fields := strings.Split(entry, "=")
	if len(fields) < bgChangeMinFields {
		return change, fmt.Errorf("%w: %q has %d fields, want at least %d", ErrInvalidBgChangeFormat, entry, len(fields), bgChangeMinFields)
	}

	var err error
	if change.Beat, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64); err != nil {
		return change, fmt.Errorf("%w: beat %q", ErrInvalidBgChangeFormat, fields[0])
	}
	change.FileName = fields[1]
	if change.Rate, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
		return change, fmt.Errorf("%w: rate %q", ErrInvalidBgChangeFormat, fields[2])
	}
	flags := []*int8{&change.FadeLast, &change.RewindMovie, &change.Loop}
	for i, flag := range flags {
		n, err := strconv.ParseInt(strings.TrimSpace(fields[3+i]), 10, 8)
		if err != nil {
			return change, fmt.Errorf("%w: flag %q", ErrInvalidBgChangeFormat, fields[3+i])
		}
		*flag = int8(n)
	}

	extended := []**string{&change.EffectName, &change.SecondFileName, &change.TransitionName, &change.Color1, &change.Color2}
	for i, field := range extended {
		if bgChangeMinFields+i < len(fields) {
			*field = optionalValue(fields[bgChangeMinFields+i])
		}
	}
	return change, nil
}

// parseFgChanges keeps every entry it can read and skips the rest.
func parseFgChanges(value *string) []FgChange {
	changes := make([]FgChange, 0)
	if value == nil {
		return changes
	}
	for _, entry := range splitChangeEntries(*value) {
		fields := strings.Split(entry, "=")
		if len(fields) < fgChangeMinFields {
			Logger().Debug("skipping malformed FGCHANGES entry", zap.String("entry", entry))
			continue
		}
		beat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			Logger().Debug("skipping malformed FGCHANGES entry", zap.String("entry", entry), zap.Error(err))
			continue
		}
		changes = append(changes, FgChange{Beat: beat, FileName: fields[1]})
	}
	return changes
}
