package gosm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

const (
	commentMarker   = "//"
	lineTerminator  = "\r\n"
	fieldTerminator = ';'
)

type directiveHandler func(sim *Simfile, value *string) error

var directiveHandlers = map[string]directiveHandler{
	"TITLE":            func(s *Simfile, v *string) error { s.Title = v; return nil },
	"SUBTITLE":         func(s *Simfile, v *string) error { s.Subtitle = v; return nil },
	"ARTIST":           func(s *Simfile, v *string) error { s.Artist = v; return nil },
	"TITLETRANSLIT":    func(s *Simfile, v *string) error { s.TitleTranslit = v; return nil },
	"SUBTITLETRANSLIT": func(s *Simfile, v *string) error { s.SubtitleTranslit = v; return nil },
	"ARTISTTRANSLIT":   func(s *Simfile, v *string) error { s.ArtistTranslit = v; return nil },
	"GENRE":            func(s *Simfile, v *string) error { s.Genre = v; return nil },
	"CREDIT":           func(s *Simfile, v *string) error { s.Credit = v; return nil },
	"BANNER":           func(s *Simfile, v *string) error { s.BannerPath = v; return nil },
	"JACKET":           func(s *Simfile, v *string) error { s.JacketPath = v; return nil },
	"BACKGROUND":       func(s *Simfile, v *string) error { s.BackgroundPath = v; return nil },
	"PREVIEWVID":       func(s *Simfile, v *string) error { s.PreviewVideoPath = v; return nil },
	"LYRICSPATH":       func(s *Simfile, v *string) error { s.LyricsPath = v; return nil },
	"CDTITLE":          func(s *Simfile, v *string) error { s.CDTitlePath = v; return nil },
	"MUSIC":            func(s *Simfile, v *string) error { s.MusicPath = v; return nil },
	"OFFSET":           func(s *Simfile, v *string) error { s.Offset = parseFloat(v); return nil },
	"SAMPLESTART":      func(s *Simfile, v *string) error { s.SampleStart = parseFloat(v); return nil },
	"SAMPLELENGTH":     func(s *Simfile, v *string) error { s.SampleLength = parseFloat(v); return nil },
	"SELECTABLE":       func(s *Simfile, v *string) error { s.Selectable = parseBool(v); return nil },
	"BPMS": func(s *Simfile, v *string) (err error) {
		s.BPMs, err = parseBPMs(v)
		return err
	},
	"STOPS": func(s *Simfile, v *string) (err error) {
		s.Stops, err = parseStops(v)
		return err
	},
	"DISPLAYBPM": func(s *Simfile, v *string) (err error) {
		s.DisplayBPM, err = parseDisplayBPM(v)
		return err
	},
	"BGCHANGES": func(s *Simfile, v *string) (err error) {
		s.BgChanges, err = parseBgChanges(v)
		return err
	},
	"FGCHANGES": func(s *Simfile, v *string) error {
		s.FgChanges = parseFgChanges(v)
		return nil
	},
	"NOTES": func(s *Simfile, v *string) error {
		chart, err := parseChart(v)
		if err != nil {
			return err
		}
		s.Charts = append(s.Charts, chart)
		return nil
	},
}

// Parse decodes a simfile read from r. The first malformed BPMS, STOPS, DISPLAYBPM,
// BGCHANGES or NOTES directive aborts the parse and no Simfile is returned.
// Malformed metadata values are dropped silently and unknown directives are ignored.
func Parse(r io.Reader) (*Simfile, error) {
	normalized, err := normalize(r)
	if err != nil {
		return nil, err
	}

	sim := NewSimfile()
	reader := bufio.NewReader(strings.NewReader(normalized))
	for {
		section, readErr := reader.ReadString(fieldTerminator)
		if len(section) == 0 {
			break
		}
		if err := parseSection(sim, section); err != nil {
			return nil, err
		}
		if readErr != nil {
			break
		}
	}
	return sim, nil
}

// normalize strips line comments and surrounding whitespace from every line.
// Directive values may span lines, so this has to finish before sections are split.
func normalize(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	var sb strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("%w: %w", ErrBufRead, err)
		}
		if len(line) > 0 {
			sb.WriteString(strings.TrimSpace(stripComment(line)))
			sb.WriteString(lineTerminator)
		}
		if err == io.EOF {
			break
		}
	}
	return sb.String(), nil
}

func parseSection(sim *Simfile, section string) error {
	start := strings.IndexByte(section, '#')
	if start < 0 {
		Logger().Debug("discarding section without directive", zap.String("section", section))
		return nil
	}
	directive := section[start+1:]
	sep := strings.IndexByte(directive, ':')
	if sep < 0 {
		Logger().Debug("discarding section without value", zap.String("section", section))
		return nil
	}

	key := directive[:sep]
	handler, ok := directiveHandlers[key]
	if !ok {
		Logger().Debug("ignoring unknown directive", zap.String("key", key))
		return nil
	}
	value := strings.TrimSuffix(directive[sep+1:], string(fieldTerminator))
	return handler(sim, optionalValue(value))
}

// optionalValue trims s and reports an empty result as absent.
func optionalValue(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
