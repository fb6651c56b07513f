/*
Package pgadapter provides a sqlkb.Adapter with a PostgreSQL database
as backend.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	// Import of postgres driver
	_ "github.com/lib/pq"
	"github.com/vicky2004-art/plant-identifier/kb/sqlkb"
)

const recordsTableCreateStmt = `CREATE TABLE IF NOT EXISTS species_records (
	label TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	family TEXT NOT NULL,
	group_name TEXT NOT NULL,
	image TEXT NOT NULL,
	description TEXT NOT NULL,
	other_plants TEXT NOT NULL)`

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns an Adapter that
works on the database it points to or an error if the connection
cannot be opened.
*/
func New(url string) (sqlkb.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) CreateRecordsTable() error {
	_, err := a.db.Exec(recordsTableCreateStmt)
	if err != nil {
		return fmt.Errorf("running species_records creation statement: %v", err)
	}
	return nil
}

func (a *adapter) PutRecord(label, name, family, group, image, description, otherPlants string) error {
	_, err := a.db.Exec(
		`INSERT INTO species_records (label, name, family, group_name, image, description, other_plants)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (label) DO UPDATE SET
			name=excluded.name, family=excluded.family, group_name=excluded.group_name,
			image=excluded.image, description=excluded.description, other_plants=excluded.other_plants`,
		label, name, family, group, image, description, otherPlants)
	return err
}

func (a *adapter) GetRecord(label string) (*sqlkb.RawRecord, error) {
	r := &sqlkb.RawRecord{}
	err := a.db.QueryRow(
		`SELECT label, name, family, group_name, image, description, other_plants
		FROM species_records WHERE label = $1`, label).
		Scan(&r.Label, &r.Name, &r.Family, &r.Group, &r.Image, &r.Description, &r.OtherPlants)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (a *adapter) ListLabels() ([]string, error) {
	rows, err := a.db.Query(`SELECT label FROM species_records ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

func (a *adapter) Close() error {
	return a.db.Close()
}
