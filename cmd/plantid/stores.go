package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/vicky2004-art/plant-identifier/corpus"
	"github.com/vicky2004-art/plant-identifier/kb"
	"github.com/vicky2004-art/plant-identifier/kb/mongokb"
	"github.com/vicky2004-art/plant-identifier/kb/rediskb"
	"github.com/vicky2004-art/plant-identifier/kb/sqlkb"
	"github.com/vicky2004-art/plant-identifier/kb/sqlkb/pgadapter"
	"github.com/vicky2004-art/plant-identifier/kb/sqlkb/sqlite3adapter"
	"github.com/vicky2004-art/plant-identifier/kb/yamlkb"
)

const redisKeyPrefix = "plantid:species"

/*
openCorpus opens the training corpus indicated by the given input: the
embedded corpus when empty, a YML corpus for .yml or .yaml paths and a
CSV corpus otherwise ("-" reads CSV from STDIN).
*/
func openCorpus(config *rootCmdConfig, input string) (*corpus.Corpus, error) {
	switch {
	case input == "":
		return corpus.Default(), nil
	case strings.HasSuffix(input, ".yml"), strings.HasSuffix(input, ".yaml"):
		config.Logf("Reading corpus from YML file %s...", input)
		return corpus.ReadYAMLFromFile(input)
	case input == "-":
		config.Logf("Reading CSV corpus from STDIN...")
		return corpus.ReadCSVFromFilePath("")
	default:
		config.Logf("Reading corpus from CSV file %s...", input)
		return corpus.ReadCSVFromFilePath(input)
	}
}

/*
openKBStore opens the knowledge base indicated by the given input: the
embedded records when empty, a YML file for .yml or .yaml paths, an
SQLite3 database for .db paths, or a PostgreSQL, redis or MongoDB
backend for postgresql://, redis:// and mongodb:// URLs.
*/
func openKBStore(ctx context.Context, config *rootCmdConfig, input string) (kb.Store, error) {
	switch {
	case input == "":
		return kb.Default(), nil
	case strings.HasSuffix(input, ".yml"), strings.HasSuffix(input, ".yaml"):
		config.Logf("Reading knowledge base from YML file %s...", input)
		return yamlkb.Open(ctx, input)
	case strings.HasSuffix(input, ".db"):
		config.Logf("Creating SQLite3 adapter for file %s to open knowledge base...", input)
		adapter, err := sqlite3adapter.New(input, 0)
		if err != nil {
			return nil, err
		}
		return sqlkb.Open(ctx, adapter)
	case strings.HasPrefix(input, "postgresql://"):
		config.Logf("Creating PostgreSQL adapter for url %s to open knowledge base...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		return sqlkb.Open(ctx, adapter)
	case strings.HasPrefix(input, "redis://"):
		config.Logf("Opening redis knowledge base at %s...", input)
		return rediskb.Open(input, redisKeyPrefix)
	case strings.HasPrefix(input, "mongodb://"):
		config.Logf("Opening MongoDB knowledge base at %s...", input)
		return mongokb.Dial(ctx, input)
	default:
		return nil, fmt.Errorf("cannot tell the kind of knowledge base %q holds", input)
	}
}
