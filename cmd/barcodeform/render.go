package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-barcodeform/internal/cliconfig"
	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/orchestrator"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output string
		title  string
		action string
		preset string
	)

	cmd := &cobra.Command{
		Use:   "render [barcodes.yaml | URL]",
		Short: "Render the barcode form as HTML",
		Long: `Render writes the barcode form page. When a barcodes file or URL is
given the form is prefilled from it, otherwise an empty form is rendered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []orchestrator.Option
			if preset != "" {
				data, err := os.ReadFile(preset)
				if err != nil {
					return fmt.Errorf("read preset: %w", err)
				}
				transformer, err := orchestrator.NewPresetTransformer(data)
				if err != nil {
					return err
				}
				extra = append(extra, orchestrator.WithTransformer(transformer))
			}
			orch, err := a.orchestrator(extra...)
			if err != nil {
				return err
			}

			req := orchestrator.Request{
				Renderer: a.cfg.Render.Renderer,
				RenderOptions: render.RenderOptions{
					Action: action,
					Title:  title,
				},
			}
			if len(args) == 1 {
				req.Source = config.ParseSource(args[0])
			}

			out, err := orch.Generate(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("render form: %w", err)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			a.logger.Info("form written", "path", output, "bytes", len(out))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&title, "title", "", "page heading")
	flags.StringVar(&action, "action", "", "URL the form posts to")
	flags.StringVar(&preset, "preset", "", "YAML file with default set values")
	flags.String("renderer", "vanilla", "renderer to use (vanilla, dom)")
	flags.Bool("literal-classes", false, "write the legacy class lists")
	flags.String("stylesheet", "", "link this stylesheet instead of inlining the default one")
	flags.String("engine", cliconfig.EnginePongo2, "template engine for the vanilla renderer (pongo2, go-template)")

	_ = a.v.BindPFlag(cliconfig.KeyRenderer, flags.Lookup("renderer"))
	_ = a.v.BindPFlag(cliconfig.KeyLiteralClasses, flags.Lookup("literal-classes"))
	_ = a.v.BindPFlag(cliconfig.KeyStylesheet, flags.Lookup("stylesheet"))
	_ = a.v.BindPFlag(cliconfig.KeyEngine, flags.Lookup("engine"))
	return cmd
}
