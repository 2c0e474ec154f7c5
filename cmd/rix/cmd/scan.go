package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jostylr/rix-parser-sub000/internal/render"
)

var scanExpr string

var scanCmd = &cobra.Command{
	Use:   "scan [datei]",
	Short: "Gibt den Tokenstrom aus",
	Long: `Zerlegt RiX-Quelltext in Tokens und gibt sie mit Typ, Wert und
Position aus. Ohne Datei wird von stdin gelesen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanExpr, "expr", "e", "", "Quelltext direkt angeben")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, scanExpr)
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	res, err := engine.Scan(cmd.Context(), source)
	if err != nil {
		return report(cmd, source, err)
	}

	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, render.Tokens(res.Tokens))
	}
	return render.New(cmd.OutOrStdout()).Tokens(res.Tokens)
}
