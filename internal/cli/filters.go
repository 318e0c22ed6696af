package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// filtersCmd represents the filters command
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the statement filters applied during annotation",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, err := buildFilterChain(curationsFile)
		if err != nil {
			return err
		}
		for i, desc := range chain.Descriptions() {
			fmt.Printf("%d. %s\n", i+1, desc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)

	filtersCmd.Flags().StringVar(&curationsFile, "curations", "", "INDRA curations JSON file; when set the curation filter is included")
}
