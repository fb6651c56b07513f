/*
Package sqlkb provides an implementation of kb.Store that uses a SQL
database as backend. The SQL dialect specifics are isolated behind the
Adapter interface, with implementations for SQLite3 and PostgreSQL in
subpackages.
*/
package sqlkb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vicky2004-art/plant-identifier/kb"
)

/*
Adapter is an interface providing the methods needed to implement a
kb.Store with a SQL database backend.
*/
type Adapter interface {
	// CreateRecordsTable creates the species records table if it
	// does not exist yet.
	CreateRecordsTable() error
	// PutRecord inserts or replaces the row for the given label.
	// The related-species names are passed serialized.
	PutRecord(label, name, family, group, image, description, otherPlants string) error
	// GetRecord returns the row for the given label as a RawRecord,
	// or nil if there is none.
	GetRecord(label string) (*RawRecord, error)
	// ListLabels returns the labels of all stored rows in
	// lexicographical order.
	ListLabels() ([]string, error)
	// Close closes the underlying database.
	Close() error
}

/*
RawRecord is a species record row as stored in the database, with the
related-species names still serialized.
*/
type RawRecord struct {
	Label       string
	Name        string
	Family      string
	Group       string
	Image       string
	Description string
	OtherPlants string
}

type sqlStore struct {
	adapter Adapter
}

/*
Open takes an Adapter, ensures the records table exists on its
database and returns a kb.Store working on it or an error.
*/
func Open(ctx context.Context, adapter Adapter) (kb.Store, error) {
	if err := adapter.CreateRecordsTable(); err != nil {
		return nil, fmt.Errorf("opening sql knowledge base: %v", err)
	}
	return &sqlStore{adapter}, nil
}

func (ss *sqlStore) Get(ctx context.Context, label string) (*kb.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := ss.adapter.GetRecord(label)
	if err != nil {
		return nil, fmt.Errorf("retrieving record %q: %v", label, err)
	}
	if raw == nil {
		return nil, nil
	}
	var otherPlants []string
	if raw.OtherPlants != "" {
		if err := json.Unmarshal([]byte(raw.OtherPlants), &otherPlants); err != nil {
			return nil, fmt.Errorf("retrieving record %q: decoding related species: %v", label, err)
		}
	}
	return &kb.Record{
		Label:       raw.Label,
		Name:        raw.Name,
		Family:      raw.Family,
		Group:       raw.Group,
		Image:       raw.Image,
		Description: raw.Description,
		OtherPlants: otherPlants,
	}, nil
}

func (ss *sqlStore) Put(ctx context.Context, r *kb.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	otherPlants, err := json.Marshal(r.OtherPlants)
	if err != nil {
		return fmt.Errorf("storing record %q: encoding related species: %v", r.Label, err)
	}
	err = ss.adapter.PutRecord(r.Label, r.Name, r.Family, r.Group, r.Image, r.Description, string(otherPlants))
	if err != nil {
		return fmt.Errorf("storing record %q: %v", r.Label, err)
	}
	return nil
}

func (ss *sqlStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	labels, err := ss.adapter.ListLabels()
	if err != nil {
		return nil, fmt.Errorf("listing records: %v", err)
	}
	return labels, nil
}

func (ss *sqlStore) Close(ctx context.Context) error {
	return ss.adapter.Close()
}
