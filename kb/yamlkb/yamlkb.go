/*
Package yamlkb provides methods to parse species knowledge-base
records from YAML documents.
*/
package yamlkb

import (
	"context"
	"fmt"
	"os"

	"github.com/vicky2004-art/plant-identifier/kb"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadRecords takes a slice of bytes with species records in YML and
returns a slice of records parsed from it or an error.
The YML is expected to be an object containing a species property. The
value for this should be an object with a property per species label,
each holding the record's name, family, group, image, description and
other_plants fields.
*/
func ReadRecords(md []byte) ([]*kb.Record, error) {
	document := struct {
		Species map[string]*kb.Record
	}{}
	err := yaml.Unmarshal(md, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing yml records: %v", err)
	}
	if document.Species == nil {
		return nil, fmt.Errorf("knowledge base file has no species information")
	}
	records := make([]*kb.Record, 0, len(document.Species))
	for label, r := range document.Species {
		if r == nil {
			return nil, fmt.Errorf("species %s has no record", label)
		}
		r.Label = label
		records = append(records, r)
	}
	return records, nil
}

/*
ReadRecordsFromFile takes a filepath string, reads its contents and
uses ReadRecords to parse it and return a slice of records or an
error. If the file indicated by the filepath cannot be opened for
reading an error will be returned.
*/
func ReadRecordsFromFile(filepath string) ([]*kb.Record, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base yml file %s: %v", filepath, err)
	}
	records, err := ReadRecords(md)
	if err != nil {
		err = fmt.Errorf("parsing knowledge base yml file %s: %v", filepath, err)
	}
	return records, err
}

/*
Open takes a filepath string and returns a memory-backed kb.Store
preloaded with the records parsed from the file, or an error.
*/
func Open(ctx context.Context, filepath string) (kb.Store, error) {
	records, err := ReadRecordsFromFile(filepath)
	if err != nil {
		return nil, err
	}
	s := kb.NewMemoryStore()
	for _, r := range records {
		if err := s.Put(ctx, r); err != nil {
			return nil, err
		}
	}
	return s, nil
}
