package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	plantid "github.com/vicky2004-art/plant-identifier"
	"github.com/vicky2004-art/plant-identifier/feature"
	"github.com/vicky2004-art/plant-identifier/tree"
)

type rulesCmdConfig struct {
	*rootCmdConfig
	corpusInput string
	maxDepth    int
	output      string
}

func rulesCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &rulesCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the decision rules of a grown tree",
		Long:  `Grow a tree from a training corpus and render its decision logic as an ordered sequence of threshold rules`,
		Run: func(cmd *cobra.Command, args []string) {
			c, err := openCorpus(config.rootCmdConfig, config.corpusInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := tree.Grow(c, config.maxDepth)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = outputRules(config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.corpusInput), "corpus", "c", "", "path to a CSV (.csv) or YML (.yml) file with the training corpus ('-' for CSV on STDIN, defaults to the embedded corpus)")
	cmd.PersistentFlags().IntVarP(&(config.maxDepth), "max-depth", "d", plantid.DefaultMaxDepth, "maximum depth of the grown tree")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the rules will be written (defaults to STDOUT)")
	return cmd
}

func outputRules(outputPath string, t *tree.Tree) error {
	var f *os.File
	var err error
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return t.WriteRules(f, feature.Names())
}
