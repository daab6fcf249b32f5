package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/katas-backend/internal/app"
	"github.com/heartmarshall/katas-backend/internal/config"
	"github.com/heartmarshall/katas-backend/internal/service/shopping"
	"github.com/heartmarshall/katas-backend/internal/service/words"
)

type rootOptions struct {
	configPath string
	jsonOutput bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "katactl",
		Short:        "Run glossary, shopping and word-picker operations locally",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to YAML config (optional)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newLookupCmd(opts),
		newListCmd(opts),
		newTotalCmd(opts),
		newPickCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// load honours --config when given and otherwise behaves like the server (CONFIG_PATH, then ./config.yaml).
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.LoadFile(o.configPath, true)
	}
	return config.Load()
}

func (o *rootOptions) print(cmd *cobra.Command, plain string, v any) error {
	if !o.jsonOutput {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), plain)
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(v)
}

// components loads the config and builds the same services the server runs.
func (o *rootOptions) components(cmd *cobra.Command) (*app.Components, error) {
	cfg, err := o.load(cmd)
	if err != nil {
		return nil, err
	}
	return app.NewComponents(cfg, slog.New(slog.DiscardHandler))
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <term>",
		Short: "Look up a glossary term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := opts.components(cmd)
			if err != nil {
				return err
			}

			term := args[0]
			def := components.Glossary.Lookup(cmd.Context(), term)
			return opts.print(cmd, def, map[string]string{"word": term, "definition": def})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all glossary entries ordered by term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			components, err := opts.components(cmd)
			if err != nil {
				return err
			}

			entries := components.Glossary.Entries()
			lines := make([]string, len(entries))
			for i, e := range entries {
				lines[i] = e.Term + ": " + e.Definition
			}
			return opts.print(cmd, strings.Join(lines, "\n"), entries)
		},
	}
}

func newTotalCmd(opts *rootOptions) *cobra.Command {
	var taxRate float64

	cmd := &cobra.Command{
		Use:   "total [item...]",
		Short: "Compute the tax-inclusive total against the configured price table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			logger := slog.New(slog.DiscardHandler)
			components, err := app.NewComponents(cfg, logger)
			if err != nil {
				return err
			}

			svc := components.Shopping
			if cmd.Flags().Changed("tax") {
				svc = shopping.NewService(logger, cfg.Shopping.Prices, taxRate)
			}

			receipt := svc.Checkout(cmd.Context(), args)
			return opts.print(cmd, strconv.FormatFloat(receipt.Total, 'f', 2, 64),
				map[string]any{"items": receipt.Items, "total": receipt.Total, "tax_rate": svc.TaxRate()})
		},
	}
	cmd.Flags().Float64Var(&taxRate, "tax", 0, "override the configured tax rate")
	return cmd
}

func newPickCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick [word...]",
		Short: "Concatenate the i-th character of the i-th word",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := words.Pick(args)
			if err != nil {
				return err
			}
			return opts.print(cmd, result, map[string]string{"result": result})
		},
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd, app.BuildVersion(), app.Build())
		},
	}
}
