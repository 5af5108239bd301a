package gosm

// Simfile is a decoded StepMania .sm file. Nil pointer fields were absent or empty in the source.
type Simfile struct {
	Title            *string
	Subtitle         *string
	Artist           *string
	TitleTranslit    *string
	SubtitleTranslit *string
	ArtistTranslit   *string
	Genre            *string
	Credit           *string

	// asset paths, relative to the song directory
	BannerPath       *string
	JacketPath       *string
	BackgroundPath   *string
	PreviewVideoPath *string
	LyricsPath       *string
	CDTitlePath      *string
	MusicPath        *string

	Offset       *float64
	SampleStart  *float64
	SampleLength *float64
	Selectable   *bool

	BPMs       []BPM
	DisplayBPM *DisplayBPM
	Stops      []Stop
	BgChanges  []BgChange
	FgChanges  []FgChange
	Charts     []Chart
}

func NewSimfile() *Simfile {
	return &Simfile{
		BPMs:      make([]BPM, 0),
		Stops:     make([]Stop, 0),
		BgChanges: make([]BgChange, 0),
		FgChanges: make([]FgChange, 0),
		Charts:    make([]Chart, 0),
	}
}

type BPM struct {
	Beat float64
	BPM  float64
}

type Stop struct {
	Beat     float64
	Duration float64 // seconds
}

type DisplayBPMType int

const (
	DisplayBPMSingle DisplayBPMType = iota
	DisplayBPMRange
	DisplayBPMRandom
)

// DisplayBPM is the tempo shown on the song select screen.
// Single sets Min and Max to the same value; Random leaves both zero.
type DisplayBPM struct {
	Type DisplayBPMType
	Min  float64
	Max  float64
}

type BgChange struct {
	Beat        float64
	FileName    string // file or folder name
	Rate        float64
	FadeLast    int8
	RewindMovie int8
	Loop        int8

	EffectName     *string
	SecondFileName *string
	TransitionName *string
	Color1         *string
	Color2         *string
}

type FgChange struct {
	Beat     float64
	FileName string
}

type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Challenge
	Edit
)

var difficultyNames = []string{"Beginner", "Easy", "Medium", "Hard", "Challenge", "Edit"}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return "Unknown"
	}
	return difficultyNames[d]
}

type NoteType int

const (
	NoteNone NoteType = iota
	NoteNormal
	NoteHoldHead
	NoteHoldOrRollTail
	NoteRollHead
	NoteMine
	NoteAutomaticKeysound
	NoteLift
	NoteFake
	NoteInvalid
)

// Measure holds one measure's cells row by row, one cell per lane.
type Measure []NoteType

type Chart struct {
	Type        string // e.g. dance-single
	Author      *string
	Difficulty  Difficulty
	Meter       uint16
	RadarValues []float64
	Measures    []Measure
}

// TotalNotes counts the cells a player has to hit.
func (c Chart) TotalNotes() int {
	n := 0
	for _, m := range c.Measures {
		for _, note := range m {
			switch note {
			case NoteNormal, NoteHoldHead, NoteRollHead, NoteLift:
				n++
			}
		}
	}
	return n
}

// SimfileData is a loaded simfile together with where it came from.
type SimfileData struct {
	Path    string
	Md5     string
	Sha256  string
	Simfile *Simfile
}

type SimfileDirectory struct {
	Path       string
	Name       string
	SimfileSet []SimfileData
}

func NewSimfileDirectory() SimfileDirectory {
	var sd SimfileDirectory
	sd.SimfileSet = make([]SimfileData, 0)
	return sd
}
