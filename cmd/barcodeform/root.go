package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-barcodeform/internal/cliconfig"
	"github.com/goliatone/go-barcodeform/internal/logging"
	"github.com/goliatone/go-barcodeform/pkg/orchestrator"
	"github.com/goliatone/go-barcodeform/pkg/render"
	"github.com/goliatone/go-barcodeform/pkg/renderers/dom"
	"github.com/goliatone/go-barcodeform/pkg/renderers/vanilla"
)

// app carries the state shared by the subcommands once flags and config have
// been resolved.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        cliconfig.Config
	logger     hclog.Logger
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: cliconfig.New()}

	rootCmd := &cobra.Command{
		Use:   "barcodeform",
		Short: "Build barcode set files for DNA read demultiplexing",
		Long: `barcodeform edits barcodes.yaml files that describe constant and
variable barcode sets. Forms can be rendered to HTML, served over HTTP,
or filled in interactively from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "settings file (default ./barcodeform.yaml when present)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error, json:<level>)")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.Int("mismatches", 0, "mismatches written for every constant set")

	_ = a.v.BindPFlag(cliconfig.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(cliconfig.KeyLogJSON, flags.Lookup("log-json"))
	_ = a.v.BindPFlag(cliconfig.KeyMismatches, flags.Lookup("mismatches"))

	rootCmd.AddCommand(
		newRenderCmd(a),
		newServeCmd(a),
		newPromptCmd(a),
		newNextCmd(),
	)
	return rootCmd
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := cliconfig.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Output: stderr,
	})
	a.logger.Debug("configuration loaded", "renderer", cfg.Render.Renderer, "mismatches", cfg.Config.Mismatches)
	return nil
}

// registry holds the HTML renderers configured from the render settings.
func (a *app) registry() (*render.Registry, error) {
	var opts []vanilla.Option
	var domOpts []dom.Option
	if a.cfg.Render.LiteralClasses {
		opts = append(opts, vanilla.WithLiteralClasses())
		domOpts = append(domOpts, dom.WithLiteralClasses())
	}
	if a.cfg.Render.Engine == cliconfig.EngineGoTemplate {
		opts = append(opts, vanilla.WithGoTemplateEngine())
	}
	if a.cfg.Render.Stylesheet != "" {
		opts = append(opts, vanilla.WithStylesheet(a.cfg.Render.Stylesheet))
	} else {
		opts = append(opts, vanilla.WithDefaultStyles())
	}

	html, err := vanilla.New(opts...)
	if err != nil {
		return nil, err
	}
	domOpts = append(domOpts, dom.WithLogger(a.logger.Named("dom")))

	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(dom.New(domOpts...)); err != nil {
		return nil, err
	}
	return registry, nil
}

func (a *app) orchestrator(extra ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	registry, err := a.registry()
	if err != nil {
		return nil, err
	}
	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(a.cfg.Render.Renderer),
		orchestrator.WithLogger(a.logger.Named("orchestrator")),
	}
	return orchestrator.New(append(options, extra...)...), nil
}
