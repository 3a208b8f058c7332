package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var versionJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  `Display the csvfilter version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, versionJSON)
		},
	}
	cmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "Output in JSON format")
	return cmd
}

func runVersion(cmd *cobra.Command, asJSON bool) error {
	if asJSON {
		info := struct {
			Version string `json:"version"`
		}{
			Version: Version,
		}
		out, err := json.Marshal(info)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "csvfilter %s\n", Version)
	}
	return nil
}
