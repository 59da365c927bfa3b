package main

import (
	"context"
	"fmt"
	"os"

	"rpglogs-typegen/mdconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "html2md <raw-dir> <md-dir>",
	Short: "Converts pages archived by `scraper --raw-dir` into GitHub flavored markdown.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		converted, err := mdconv.ConvertDir(args[0], args[1])
		if err != nil {
			return fmt.Errorf("error converting raw files: %w", err)
		}
		logrus.WithField("files", converted).Info("finished")
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
