package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
	"github.com/goliatone/go-barcodeform/pkg/renderers/tui"
)

func newPromptCmd(a *app) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "prompt [barcodes.yaml | URL]",
		Short: "Fill in barcode sets from the terminal",
		Long: `Prompt asks for barcode sets interactively and writes the resulting
barcodes file. An existing file can be given to edit its sets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.FormModel{}
			if len(args) == 1 {
				doc, err := config.NewLoader().Load(cmd.Context(), config.ParseSource(args[0]))
				if err != nil {
					return err
				}
				form = config.ToForm(doc)
			}

			renderer, err := newPromptRenderer(a, cmd, format)
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), form, render.RenderOptions{})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			a.logger.Info("barcodes written", "path", output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&format, "format", string(tui.OutputFormatYAML), "output format (yaml, json)")
	return cmd
}

// promptDriver is replaced in tests.
var promptDriver = func(cmd *cobra.Command) tui.PromptDriver {
	return tui.NewSurveyDriver(cmd.ErrOrStderr())
}

func newPromptRenderer(a *app, cmd *cobra.Command, format string) (*tui.Renderer, error) {
	return tui.New(
		tui.WithPromptDriver(promptDriver(cmd)),
		tui.WithOutputFormat(tui.OutputFormat(format)),
		tui.WithMismatches(a.cfg.Config.Mismatches),
	)
}
