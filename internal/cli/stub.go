package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var stubPublishForce bool

func init() {
	stubPublishCmd.Flags().BoolVarP(&stubPublishForce, "force", "f", false, "Overwrite stubs that were already published")
	rootCmd.AddCommand(stubPublishCmd)
	rootCmd.AddCommand(stubListCmd)
}

var stubPublishCmd = &cobra.Command{
	Use:   "stub:publish",
	Short: "Copy the stubs into the project so they can be customized",
	Long: `Copy every stub into the project's stub override directory
(stubs/lighthouse by default). Generators read a published stub in
preference to the built-in one. Existing files are kept unless --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, store, err := openProject()
		if err != nil {
			return err
		}

		dir := store.OverrideDir()
		written, err := store.Publish(dir, stubPublishForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		rel := dir
		if r, err := filepath.Rel(p.Root, dir); err == nil {
			rel = r
		}
		if len(written) == 0 {
			fmt.Fprintf(out, "Stubs already published to %s (use --force to overwrite).\n", rel)
			return nil
		}
		for _, name := range written {
			fmt.Fprintf(out, "  %s\n", filepath.Join(rel, filepath.FromSlash(name)))
		}
		color.New(color.FgGreen).Fprintf(out, "Published %d stubs.\n", len(written))
		return nil
	},
}

var stubListCmd = &cobra.Command{
	Use:   "stub:list",
	Short: "List the stubs and which layer each one is read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openProject()
		if err != nil {
			return err
		}

		names, err := store.List()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Stub", "Source"})
		for _, name := range names {
			src, err := store.Source(name)
			if err != nil {
				return err
			}
			t.AppendRow(table.Row{name, src})
		}
		t.Render()
		return nil
	},
}
