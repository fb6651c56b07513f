package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	plantid "github.com/vicky2004-art/plant-identifier"
	"github.com/vicky2004-art/plant-identifier/web"
)

type serveCmdConfig struct {
	*rootCmdConfig
	addr        string
	corpusInput string
	kbInput     string
	maxDepth    int
	imageDir    string
}

func serveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &serveCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the identification web UI",
		Long:  `Grow a tree and serve a web UI to identify specimens with it, browse the species knowledge base and inspect the tree's rules`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			identifier, err := newIdentifier(ctx, config.rootCmdConfig, config.corpusInput, config.kbInput, config.maxDepth)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			server := web.New(identifier, config.addr, config.imageDir)
			if err := server.ListenAndServe(ctx); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.addr), "addr", "a", ":8080", "address to serve the web UI on")
	cmd.PersistentFlags().StringVarP(&(config.corpusInput), "corpus", "c", "", "path to a CSV (.csv) or YML (.yml) file with the training corpus (defaults to the embedded corpus)")
	cmd.PersistentFlags().StringVarP(&(config.kbInput), "kb", "k", "", "path to a YML (.yml) or SQLite3 (.db) file, or a PostgreSQL/redis/MongoDB URL with the species knowledge base (defaults to the embedded one)")
	cmd.PersistentFlags().IntVarP(&(config.maxDepth), "max-depth", "d", plantid.DefaultMaxDepth, "maximum depth of the grown tree")
	cmd.PersistentFlags().StringVarP(&(config.imageDir), "images", "i", "images", "directory species images are served from")
	return cmd
}
