package corpus

import (
	"fmt"
	"os"

	"github.com/vicky2004-art/plant-identifier/feature"
	yaml "gopkg.in/yaml.v2"
)

type yamlSample struct {
	HeightCm    float64 `yaml:"height_cm"`
	LeafWidthCm float64 `yaml:"leaf_width_cm"`
	StemQuality string  `yaml:"stem_quality"`
}

/*
ReadYAML takes a slice of bytes with a corpus specification in YML and
returns a Corpus parsed from it or an error.
The YML is expected to be an object containing a species property,
whose value is an object with a property per species label holding a
list of samples, each with height_cm, leaf_width_cm and stem_quality
properties. Samples are ordered by species label appearance in the
document, then by their position in the list.
*/
func ReadYAML(md []byte) (*Corpus, error) {
	document := struct {
		Species yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing yml corpus: %v", err)
	}
	if document.Species == nil {
		return nil, fmt.Errorf("corpus file has no species information")
	}
	var samples []Sample
	for _, item := range document.Species {
		label := fmt.Sprintf("%v", item.Key)
		raw, err := yaml.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("parsing yml corpus species %s: %v", label, err)
		}
		var ys []yamlSample
		if err := yaml.Unmarshal(raw, &ys); err != nil {
			return nil, fmt.Errorf("parsing yml corpus species %s: %v", label, err)
		}
		for i, y := range ys {
			stem, err := feature.ParseStemQuality(y.StemQuality)
			if err != nil {
				return nil, fmt.Errorf("parsing yml corpus species %s sample %d: %v", label, i+1, err)
			}
			samples = append(samples, Sample{
				HeightCm:    y.HeightCm,
				LeafWidthCm: y.LeafWidthCm,
				Stem:        stem,
				Species:     label,
			})
		}
	}
	return New(samples), nil
}

/*
ReadYAMLFromFile takes a filepath string, reads its contents and uses
ReadYAML to parse it and return a Corpus or an error. If the file
indicated by the filepath cannot be opened for reading an error will
be returned.
*/
func ReadYAMLFromFile(filepath string) (*Corpus, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading corpus yml file %s: %v", filepath, err)
	}
	c, err := ReadYAML(md)
	if err != nil {
		err = fmt.Errorf("parsing corpus yml file %s: %v", filepath, err)
	}
	return c, err
}
