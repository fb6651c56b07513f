package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vicky2004-art/plant-identifier/feature"
)

/*
ReadCSV takes an io.Reader for a CSV stream and returns a Corpus built
from the samples parsed from it or an error.

The header or first row is expected to be exactly
height_cm,leaf_width_cm,stem_quality,species. The rest of the rows
should consist of two numeric measurements, a stem quality token and a
species label.
*/
func ReadCSV(reader io.Reader) (*Corpus, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	if err := validateCSVHeader(header); err != nil {
		return nil, err
	}
	var samples []Sample
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		sample, err := parseSampleFromCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		samples = append(samples, sample)
	}
	return New(samples), nil
}

/*
ReadCSVFromFilePath takes a filepath string, opens the file it points
to and uses ReadCSV to return a Corpus read from it or an error. An
empty filepath reads from STDIN.
*/
func ReadCSVFromFilePath(filepath string) (*Corpus, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading corpus: %v", err)
		}
		defer f.Close()
	}
	c, err := ReadCSV(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return c, err
}

func validateCSVHeader(header []string) error {
	expected := append(feature.Names()[:2], "stem_quality", "species")
	if len(header) != len(expected) {
		return fmt.Errorf("parsing header: expected %d columns, got %d", len(expected), len(header))
	}
	for i, name := range expected {
		if header[i] != name {
			return fmt.Errorf("parsing header: expected column %d to be %s, got %s", i+1, name, header[i])
		}
	}
	return nil
}

func parseSampleFromCSVRow(row []string) (Sample, error) {
	if len(row) != 4 {
		return Sample{}, fmt.Errorf("expected 4 values, got %d", len(row))
	}
	height, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("parsing height %q: %v", row[0], err)
	}
	leafWidth, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("parsing leaf width %q: %v", row[1], err)
	}
	stem, err := feature.ParseStemQuality(row[2])
	if err != nil {
		return Sample{}, fmt.Errorf("parsing stem quality %q: %v", row[2], err)
	}
	if row[3] == "" {
		return Sample{}, fmt.Errorf("missing species label")
	}
	return Sample{HeightCm: height, LeafWidthCm: leafWidth, Stem: stem, Species: row[3]}, nil
}
