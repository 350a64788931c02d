package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/fixture"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check file...",
		Short: "Validate fixture files without laying them out",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errorCount int
			for _, path := range args {
				if err := checkFile(path); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					a.log.Debug("check failed", zap.String("file", path), zap.Error(err))
					errorCount++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", path)
			}
			if errorCount > 0 {
				return fmt.Errorf("%d file(s) had errors", errorCount)
			}
			return nil
		},
	}
}

func checkFile(path string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
