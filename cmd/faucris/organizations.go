// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var organizationsCmd = &cobra.Command{
	Use:   "organizations",
	Short: "Fetch organization records",
}

var orgaGetCmd = &cobra.Command{
	Use:   "get [organization ids]",
	Short: "Fetch organizations by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runOrgaGet,
}

func init() {
	addOutputFlags(orgaGetCmd)
	organizationsCmd.AddCommand(orgaGetCmd)
	rootCmd.AddCommand(organizationsCmd)
}

func runOrgaGet(cmd *cobra.Command, args []string) error {
	result, err := newClient().Organizations(cmd.Context(), joinIDs(args))
	if err != nil {
		return err
	}
	return writeResult(cmd, os.Stdout, result)
}
