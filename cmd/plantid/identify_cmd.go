package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	plantid "github.com/vicky2004-art/plant-identifier"
	"github.com/vicky2004-art/plant-identifier/feature"
)

type identifyCmdConfig struct {
	*rootCmdConfig
	heightCm    float64
	leafWidthCm float64
	stemQuality string
	corpusInput string
	kbInput     string
	maxDepth    int
	showRules   bool
}

func identifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &identifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "identify",
		Short: "Identify the species of a plant specimen",
		Long:  `Identify the species of a plant specimen from its height, leaf width and stem quality, explaining the decisions taken`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			identifier, err := newIdentifier(ctx, config.rootCmdConfig, config.corpusInput, config.kbInput, config.maxDepth)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			result, err := identifier.Identify(ctx, config.heightCm, config.leafWidthCm, config.stemQuality)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Decision path:\n%s", result.Path.Describe(feature.Names()))
			if result.Record == nil {
				fmt.Printf("Predicted species: %s (no knowledge base record)\n", result.Species)
			} else {
				fmt.Printf("Predicted species: %s\n", result.Record.Name)
				fmt.Printf("Family: %s / Group: %s\n", result.Record.Family, result.Record.Group)
				fmt.Println(strings.TrimSpace(result.Record.Description))
				if len(result.Record.OtherPlants) > 0 {
					fmt.Printf("Other plants in this group: %s\n", strings.Join(result.Record.OtherPlants, ", "))
				}
			}
			if config.showRules {
				fmt.Printf("\nDecision tree rules:\n%s", result.Rules)
			}
		},
	}
	cmd.PersistentFlags().Float64VarP(&(config.heightCm), "height", "H", 0, "plant height in cm (required)")
	cmd.PersistentFlags().Float64VarP(&(config.leafWidthCm), "leaf-width", "w", 0, "leaf width in cm (required)")
	cmd.PersistentFlags().StringVarP(&(config.stemQuality), "stem", "s", "", "stem quality: thin, medium or thick (required)")
	cmd.PersistentFlags().StringVarP(&(config.corpusInput), "corpus", "c", "", "path to a CSV (.csv) or YML (.yml) file with the training corpus ('-' for CSV on STDIN, defaults to the embedded corpus)")
	cmd.PersistentFlags().StringVarP(&(config.kbInput), "kb", "k", "", "path to a YML (.yml) or SQLite3 (.db) file, or a PostgreSQL/redis/MongoDB URL with the species knowledge base (defaults to the embedded one)")
	cmd.PersistentFlags().IntVarP(&(config.maxDepth), "max-depth", "d", plantid.DefaultMaxDepth, "maximum depth of the grown tree")
	cmd.PersistentFlags().BoolVarP(&(config.showRules), "rules", "r", false, "print the whole tree's rules after the result")
	return cmd
}

func (icc *identifyCmdConfig) Validate() error {
	if icc.heightCm == 0 {
		return fmt.Errorf("required height flag was not set")
	}
	if icc.leafWidthCm == 0 {
		return fmt.Errorf("required leaf-width flag was not set")
	}
	if icc.stemQuality == "" {
		return fmt.Errorf("required stem flag was not set")
	}
	return nil
}

func newIdentifier(ctx context.Context, config *rootCmdConfig, corpusInput, kbInput string, maxDepth int) (*plantid.Identifier, error) {
	c, err := openCorpus(config, corpusInput)
	if err != nil {
		return nil, err
	}
	store, err := openKBStore(ctx, config, kbInput)
	if err != nil {
		return nil, err
	}
	config.Logf("Growing species tree from a corpus with %d samples and %d species (max depth %d)...", c.Len(), len(c.Labels()), maxDepth)
	identifier, err := plantid.New(c, maxDepth, store)
	if err != nil {
		return nil, err
	}
	config.Logf("Done")
	return identifier, nil
}
