package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-analyzer/internal/taxonomy"
)

var rolesCommand = &cobra.Command{
	Use:   "roles",
	Short: "List the supported target roles and their keyword categories",
	RunE:  runRolesCmd,
}

func init() {
	rootCmd.AddCommand(rolesCommand)
}

func runRolesCmd(_ *cobra.Command, _ []string) error {
	for _, profile := range taxonomy.Profiles() {
		fmt.Printf("%s (%d keywords)\n", profile.Role, profile.TotalKeywords())
		for _, cat := range profile.Categories {
			fmt.Printf("  - %s: %d keywords\n", cat.Name, len(cat.Keywords))
		}
		fmt.Println()
	}
	return nil
}
