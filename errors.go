package gosm

import "errors"

var (
	ErrBufRead                   = errors.New("simfile read error")
	ErrFailedToParseBPMs         = errors.New("failed to parse BPMS")
	ErrFailedToParseStops        = errors.New("failed to parse STOPS")
	ErrTooManyValuesInDisplayBPM = errors.New("too many values in DISPLAYBPM")
	ErrFailedToParseDisplayBPM   = errors.New("failed to parse DISPLAYBPM range")
	ErrEmptyNotesSection         = errors.New("empty NOTES section")
	ErrInvalidChartFormat        = errors.New("invalid chart format")
	ErrInvalidBgChangeFormat     = errors.New("invalid BGCHANGES format")
	ErrUnknownChartDifficulty    = errors.New("unknown chart difficulty")
	ErrFailedToParseChartMeter   = errors.New("failed to parse chart meter")

	// Reserved. Invalid note cells decode to NoteInvalid and bad radar values to 0.
	ErrUnsupportedNoteType      = errors.New("unsupported note type")
	ErrFailedToParseRadarValues = errors.New("failed to parse radar values")
)
