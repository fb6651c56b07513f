package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vicky2004-art/plant-identifier/kb"
	"github.com/vicky2004-art/plant-identifier/kb/yamlkb"
)

type kbCmdConfig struct {
	*rootCmdConfig
	kbInput string
}

func kbCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &kbCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Manage species knowledge bases",
		Long:  `Inspect and load the knowledge bases the identifier looks predicted species up in`,
	}
	cmd.PersistentFlags().StringVarP(&(config.kbInput), "kb", "k", "", "path to a YML (.yml) or SQLite3 (.db) file, or a PostgreSQL/redis/MongoDB URL with the species knowledge base (defaults to the embedded one)")
	cmd.AddCommand(kbShowCmd(config), kbLoadCmd(config))
	return cmd
}

func kbShowCmd(config *kbCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the species records of a knowledge base",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			store, err := openKBStore(ctx, config.rootCmdConfig, config.kbInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer store.Close(ctx)
			labels, err := store.List(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			for _, l := range labels {
				r, err := store.Get(ctx, l)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
				fmt.Printf("%s: %s (%s, %s)\n", l, r.Name, r.Family, r.Group)
				if len(r.OtherPlants) > 0 {
					fmt.Printf("  related: %s\n", strings.Join(r.OtherPlants, ", "))
				}
			}
		},
	}
}

func kbLoadCmd(config *kbCmdConfig) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load species records into a knowledge base",
		Long:  `Load species records from a YML file (or the embedded records) into the given knowledge base backend`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			records, err := loadRecords(ctx, input)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			store, err := openKBStore(ctx, config.rootCmdConfig, config.kbInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			defer store.Close(ctx)
			for _, r := range records {
				config.Logf("Storing record for %s...", r.Label)
				if err := store.Put(ctx, r); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
			}
			config.Logf("Stored %d records", len(records))
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "path to a YML file with the records to load (defaults to the embedded records)")
	return cmd
}

func loadRecords(ctx context.Context, input string) ([]*kb.Record, error) {
	if input != "" {
		return yamlkb.ReadRecordsFromFile(input)
	}
	embedded := kb.Default()
	labels, err := embedded.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]*kb.Record, 0, len(labels))
	for _, l := range labels {
		r, err := embedded.Get(ctx, l)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
