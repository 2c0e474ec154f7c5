package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
	"github.com/jostylr/rix-parser-sub000/internal/render"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Zeigt Operator- und Registry-Tabellen",
	Long: `Zeigt alle Symbole des Scanners mit Bindungsstärke, Assoziativität
und Kategorie sowie die Einträge der System-Registry, einschließlich
der mit --registry geladenen Definitionen.`,
	Args: cobra.NoArgs,
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

func runSymbols(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	entries := parser.PrecedenceTable()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Symbol.Precedence != entries[j].Symbol.Precedence {
			return entries[i].Symbol.Precedence > entries[j].Symbol.Precedence
		}
		return entries[i].Spelling < entries[j].Spelling
	})

	reg := engine.Registry()
	defs := make(map[string]registry.Descriptor, reg.Len())
	for _, name := range reg.Names() {
		if d, ok := reg.Lookup(name); ok {
			defs[name] = d
		}
	}

	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, map[string]interface{}{
			"symbols":  render.Symbols(entries),
			"registry": render.Definitions(defs),
		})
	}

	p := render.New(cmd.OutOrStdout())
	if err := p.Title("Symbole"); err != nil {
		return err
	}
	if err := p.Symbols(entries); err != nil {
		return err
	}
	if err := p.Title("\nRegistry"); err != nil {
		return err
	}
	return p.Definitions(defs)
}
