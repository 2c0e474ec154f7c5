package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jostylr/rix-parser-sub000/internal/render"
)

var (
	parseExpr  string
	parseCheck bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [datei]",
	Short: "Gibt den Syntaxbaum aus",
	Long: `Parst RiX-Quelltext und gibt den Syntaxbaum als Gliederung, JSON
oder YAML aus. Mit --check wird nur geprüft, ob der Quelltext gültig ist.

Beispiele:
  rix parse -e "f(x) :-> x^2 + 1;"
  rix parse --format yaml programm.rix
  rix parse --check < programm.rix`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseExpr, "expr", "e", "", "Quelltext direkt angeben")
	parseCmd.Flags().BoolVar(&parseCheck, "check", false, "Nur prüfen, keinen Baum ausgeben")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, parseExpr)
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	if parseCheck {
		if err := engine.Validate(cmd.Context(), source); err != nil {
			return report(cmd, source, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}

	res, err := engine.Parse(cmd.Context(), source)
	if err != nil {
		return report(cmd, source, err)
	}

	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, render.Nodes(res.Nodes))
	}
	return render.New(cmd.OutOrStdout()).Tree(res.Nodes)
}
