package gosm

import (
	"bytes"
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadSimfile reads and parses the simfile at path. UTF-8 files (with or without BOM)
// are read as is; anything else is decoded as Shift_JIS, which older Japanese simfiles use.
func LoadSimfile(path string) (simfileData SimfileData, _ error) {
	simfileData.Path = path
	raw, err := os.ReadFile(path)
	if err != nil {
		return simfileData, fmt.Errorf("simfile open error: %w", err)
	}

	text, err := decodeSimfileText(raw)
	if err != nil {
		return simfileData, fmt.Errorf("simfile decode error: %w", err)
	}

	sim, err := Parse(bytes.NewReader(text))
	if err != nil {
		return simfileData, fmt.Errorf("simfile parse error (%s): %w", path, err)
	}
	simfileData.Simfile = sim
	simfileData.Md5, simfileData.Sha256 = getFileHash(raw)

	return simfileData, nil
}

func decodeSimfileText(raw []byte) ([]byte, error) {
	if utf8.Valid(raw) {
		text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
		return text, err
	}
	Logger().Debug("simfile is not UTF-8, decoding as Shift_JIS")
	text, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("ShiftJIS decode error: %w", err)
	}
	return text, nil
}

func getFileHash(raw []byte) (string, string) {
	md5 := fmt.Sprintf("%x", md5.Sum(raw))
	sha256 := fmt.Sprintf("%x", sha256.Sum256(raw))
	return md5, sha256
}

// LoadSimfileInDirectory loads every simfile directly inside path. The directory is
// named after the first simfile's title, or the folder name when it has none.
func LoadSimfileInDirectory(path string) (SimfileDirectory, error) {
	simfileDirectory := NewSimfileDirectory()
	simfileDirectory.Path = path
	files, err := os.ReadDir(path)
	if err != nil {
		return simfileDirectory, fmt.Errorf("simfile directory read error: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !IsSimfilePath(f.Name()) {
			continue
		}
		simfileData, err := LoadSimfile(filepath.Join(path, f.Name()))
		if err != nil {
			return NewSimfileDirectory(), err
		}
		if len(simfileData.Simfile.Charts) == 0 {
			Logger().Debug("skipping simfile without charts", zap.String("path", simfileData.Path))
			continue
		}
		simfileDirectory.SimfileSet = append(simfileDirectory.SimfileSet, simfileData)
	}

	simfileDirectory.Name = filepath.Base(filepath.Clean(path))
	if len(simfileDirectory.SimfileSet) > 0 {
		if title := simfileDirectory.SimfileSet[0].Simfile.Title; title != nil {
			simfileDirectory.Name = *title
		}
	}

	return simfileDirectory, nil
}

// FindSimfileInDirectory walks path and appends every song folder it finds to simfileDirs.
// A folder holding a simfile is not descended into.
func FindSimfileInDirectory(path string, simfileDirs *[]SimfileDirectory) error {
	files, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("simfile directory read error: %w", err)
	}
	for _, f := range files {
		if !f.IsDir() && IsSimfilePath(f.Name()) {
			simfileDirectory, err := LoadSimfileInDirectory(path)
			if err != nil {
				return err
			}
			*simfileDirs = append(*simfileDirs, simfileDirectory)
			return nil
		}
	}
	for _, f := range files {
		if f.IsDir() {
			if err := FindSimfileInDirectory(filepath.Join(path, f.Name()), simfileDirs); err != nil {
				return err
			}
		}
	}
	return nil
}
