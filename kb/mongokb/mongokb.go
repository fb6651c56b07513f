/*
Package mongokb provides an implementation of kb.Store that uses a
MongoDB database as backend.
*/
package mongokb

import (
	"context"
	"fmt"
	"sort"

	"github.com/vicky2004-art/plant-identifier/kb"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const recordsCollectionName = "species"

type mongoStore struct {
	session *mgo.Session
}

/*
Open takes a MongoDB database session and returns a kb.Store that
works on the default database for that session, or an error if its
indexes cannot be ensured.
*/
func Open(ctx context.Context, session *mgo.Session) (kb.Store, error) {
	ms := &mongoStore{session}
	err := ms.collection().EnsureIndex(mgo.Index{Key: []string{"label"}, Unique: true})
	if err != nil {
		return nil, fmt.Errorf("ensuring knowledge base indexes: %v", err)
	}
	return ms, nil
}

/*
Dial takes a MongoDB connection URL, connects to it and returns a
kb.Store working on its default database or an error.
*/
func Dial(ctx context.Context, url string) (kb.Store, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb at %s: %v", url, err)
	}
	return Open(ctx, session)
}

func (ms *mongoStore) Get(ctx context.Context, label string) (*kb.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := &kb.Record{}
	err := ms.collection().Find(bson.M{"label": label}).One(r)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving record %q: %v", label, err)
	}
	return r, nil
}

func (ms *mongoStore) Put(ctx context.Context, r *kb.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := ms.collection().Upsert(bson.M{"label": r.Label}, r)
	if err != nil {
		return fmt.Errorf("storing record %q: %v", r.Label, err)
	}
	return nil
}

func (ms *mongoStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var docs []struct {
		Label string `bson:"label"`
	}
	err := ms.collection().Find(nil).Select(bson.M{"label": 1}).All(&docs)
	if err != nil {
		return nil, fmt.Errorf("listing records: %v", err)
	}
	labels := make([]string, 0, len(docs))
	for _, d := range docs {
		labels = append(labels, d.Label)
	}
	sort.Strings(labels)
	return labels, nil
}

func (ms *mongoStore) Close(ctx context.Context) error {
	ms.session.Close()
	return nil
}

func (ms *mongoStore) collection() *mgo.Collection {
	return ms.session.DB("").C(recordsCollectionName)
}
