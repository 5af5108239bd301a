package gosm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNoteData_CodeTable(t *testing.T) {
	got := parseNoteData("0041\n103K\n2L1M\n31ZF")
	want := []Measure{{
		NoteNone, NoteNone, NoteRollHead, NoteNormal,
		NoteNormal, NoteNone, NoteHoldOrRollTail, NoteAutomaticKeysound,
		NoteHoldHead, NoteLift, NoteNormal, NoteMine,
		NoteHoldOrRollTail, NoteNormal, NoteInvalid, NoteFake,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseNoteData mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNoteData_Measures(t *testing.T) {
	got := parseNoteData("1000\r\n0000 // first\r\n,\r\n0001\r\n0010\r\n")
	want := []Measure{
		{NoteNormal, NoteNone, NoteNone, NoteNone, NoteNone, NoteNone, NoteNone, NoteNone},
		{NoteNone, NoteNone, NoteNone, NoteNormal, NoteNone, NoteNone, NoteNormal, NoteNone},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseNoteData mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChart(t *testing.T) {
	in := "dance-single:Someone:Hard:9:0.5,oops,1:\n1000\n0100\n,\n0010\n0001\n"
	chart, err := parseChart(&in)
	if err != nil {
		t.Fatalf("parseChart failed: %v", err)
	}
	want := Chart{
		Type:        "dance-single",
		Author:      strPtr("Someone"),
		Difficulty:  Hard,
		Meter:       9,
		RadarValues: []float64{0.5, 0, 1},
		Measures: []Measure{
			{NoteNormal, NoteNone, NoteNone, NoteNone, NoteNone, NoteNormal, NoteNone, NoteNone},
			{NoteNone, NoteNone, NoteNormal, NoteNone, NoteNone, NoteNone, NoteNone, NoteNormal},
		},
	}
	if diff := cmp.Diff(want, chart); diff != "" {
		t.Errorf("parseChart mismatch (-want +got):\n%s", diff)
	}
	if got := chart.TotalNotes(); got != 4 {
		t.Errorf("TotalNotes() = %d, want 4", got)
	}
}

func TestParseChart_EmptyAuthorAndRadar(t *testing.T) {
	in := " dance-single : : Beginner : 1 : : 0000 "
	chart, err := parseChart(&in)
	if err != nil {
		t.Fatalf("parseChart failed: %v", err)
	}
	if chart.Author != nil {
		t.Errorf("Author = %q, want absent", *chart.Author)
	}
	if diff := cmp.Diff([]float64{0}, chart.RadarValues); diff != "" {
		t.Errorf("RadarValues mismatch (-want +got):\n%s", diff)
	}
	if chart.Difficulty != Beginner {
		t.Errorf("Difficulty = %v, want %v", chart.Difficulty, Beginner)
	}
}

func TestParseChart_Errors(t *testing.T) {
	tests := []struct {
		in   *string
		want error
	}{
		{nil, ErrEmptyNotesSection},
		{strPtr("dance-single:a:Hard:9:0000"), ErrInvalidChartFormat},
		{strPtr("dance-single:a:Hard:9:0:0000:extra"), ErrInvalidChartFormat},
		{strPtr("dance-single:a:hard:9:0:0000"), ErrUnknownChartDifficulty},
		{strPtr("dance-single:a:Expert:9:0:0000"), ErrUnknownChartDifficulty},
		{strPtr("dance-single:a:Hard:nine:0:0000"), ErrFailedToParseChartMeter},
		{strPtr("dance-single:a:Hard:-1:0:0000"), ErrFailedToParseChartMeter},
	}
	for _, tt := range tests {
		if _, err := parseChart(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("parseChart(%v) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParse_MultipleCharts(t *testing.T) {
	sim := parseString(t, "#NOTES:dance-single::Easy:2:0:0000;\n#NOTES:dance-single::Edit:12:0:1111;")
	if len(sim.Charts) != 2 {
		t.Fatalf("got %d charts, want 2", len(sim.Charts))
	}
	if sim.Charts[0].Difficulty != Easy || sim.Charts[1].Difficulty != Edit {
		t.Errorf("difficulties = %v, %v, want Easy, Edit", sim.Charts[0].Difficulty, sim.Charts[1].Difficulty)
	}
}

func TestDifficulty_String(t *testing.T) {
	if got := Challenge.String(); got != "Challenge" {
		t.Errorf("Challenge.String() = %q", got)
	}
	if got := Difficulty(42).String(); got != "Unknown" {
		t.Errorf("Difficulty(42).String() = %q", got)
	}
}
