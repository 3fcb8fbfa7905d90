package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lhgen-dev/lhgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var interfacesGroup string

func init() {
	interfacesCmd.Flags().StringVar(&interfacesGroup, "group", "", "Only list one group (type, field, argument, validation)")
	rootCmd.AddCommand(interfacesCmd)
}

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List the directive interfaces the generator knows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		group := strings.ToLower(strings.TrimSpace(interfacesGroup))

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Interface", "Group", "Methods", "Description"})

		n := 0
		for _, i := range scaffold.Interfaces {
			if group != "" && string(i.Group) != group {
				continue
			}
			methods := "no"
			if i.Methods {
				methods = "yes"
			}
			t.AppendRow(table.Row{i.Name, i.Group, methods, i.Description})
			n++
		}
		if n == 0 {
			return fmt.Errorf("no interfaces in group %q", interfacesGroup)
		}

		t.Render()
		return nil
	},
}
