package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/inkqr/internal/app"
	"github.com/rook-computer/inkqr/internal/config"
	"github.com/rook-computer/inkqr/internal/display"
	"github.com/rook-computer/inkqr/internal/logging"
	"github.com/rook-computer/inkqr/internal/render"
	"github.com/rook-computer/inkqr/internal/web"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inkqr",
		Short:         "Render QR codes with a caption woven into the modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./inkqr.yaml if present)")
	pf.Bool("debug", false, "enable debug logging")
	pf.String("log-file", "", "also write JSON logs to this file")
	pf.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file")
	pf.Duration("timeout", config.DefaultTimeout, "maximum time for a single render")
	pf.String("font-backend", string(render.BackendOpenType), "caption rasterizer: opentype or freetype")

	root.AddCommand(newServeCmd(), newRenderCmd(), newShowCmd(), newVersionCmd())
	return root
}

// appEnv is what every command needs after startup.
type appEnv struct {
	cfg    config.Config
	logger *logging.ZapLogger
	gen    *app.Generator
}

// setup loads config, builds the logger and parses the font. A font that
// does not load stops the command before any work.
func setup(cmd *cobra.Command) (*appEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Log.Stdio != "" {
		if err := redirectStdIO(cfg.Log.Stdio); err != nil {
			return nil, fmt.Errorf("redirect stdio: %w", err)
		}
	}

	logger, err := logging.New(logging.Config{Debug: cfg.Log.Debug, File: cfg.Log.File})
	if err != nil {
		return nil, err
	}

	font, err := app.LoadFont(cfg.FontBackend())
	if err != nil {
		logger.Errorf("main", "font: %v", err)
		_ = logger.Sync()
		return nil, err
	}
	logger.Infof("main", "caption font loaded (backend=%s)", font.Backend())

	gen := app.New(font, logger, cfg.Render.Timeout)
	gen.DefaultAccent = cfg.DefaultAccent()
	return &appEnv{cfg: cfg, logger: logger, gen: gen}, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web form and the render API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			handler, err := web.NewRouter(web.Deps{
				Renderer:      rt.gen,
				Logger:        rt.logger,
				DefaultAccent: rt.gen.DefaultAccent,
				DevMode:       rt.cfg.DevMode,
				StaticDir:     rt.cfg.StaticDir,
			})
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			var srv web.Server = web.NewHTTPServer(web.ServerConfigFrom(rt.cfg), handler, rt.logger)
			if err := srv.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			rt.logger.Infof("main", "shutting down")
			return srv.Stop()
		},
	}
	f := cmd.Flags()
	f.String("listen", config.DefaultListenAddr, "HTTP listen address")
	f.Bool("dev", false, "allow cross-origin API calls")
	f.String("static-dir", "", "directory with an index.html that replaces the built-in page")
	return cmd
}

// addRenderFlags registers the per-code options shared by render and show.
func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("payload", "p", "", "URL or text to encode")
	f.StringP("caption", "c", "", "caption woven into the code")
	f.String("accent", "", "accent colour as #RRGGBB (default from config)")
	f.String("position", string(render.PositionCenter), "caption position: top, center or bottom")
	f.String("version", "auto", "QR version 1-40 or auto")
}

func renderConfigFromFlags(cmd *cobra.Command) (render.Config, error) {
	f := cmd.Flags()
	payload, _ := f.GetString("payload")
	caption, _ := f.GetString("caption")
	accentRaw, _ := f.GetString("accent")
	posRaw, _ := f.GetString("position")
	versionRaw, _ := f.GetString("version")

	var cfg render.Config
	cfg.Payload = payload
	cfg.Caption = caption
	if accentRaw != "" {
		accent, err := render.ParseHexColor(accentRaw)
		if err != nil {
			return render.Config{}, err
		}
		cfg.Accent = accent
	}
	pos, err := render.ParsePosition(posRaw)
	if err != nil {
		return render.Config{}, err
	}
	cfg.Position = pos
	version, err := render.ParseVersion(versionRaw)
	if err != nil {
		return render.Config{}, err
	}
	cfg.Version = version
	return cfg, nil
}

func generateFromFlags(cmd *cobra.Command, rt *appEnv) (render.Result, error) {
	cfg, err := renderConfigFromFlags(cmd)
	if err != nil {
		return render.Result{}, err
	}
	return rt.gen.Generate(cmd.Context(), cfg)
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one code to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			res, err := generateFromFlags(cmd, rt)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("output")
			if err := writeOutput(out, cmd.OutOrStdout(), res.PNG); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "version %d, %dx%d px\n", res.Version, res.Size(), res.Size())
			return nil
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().StringP("output", "o", "texted-qr.png", `output file, "-" for stdout`)
	return cmd
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render one code and show it full screen on the framebuffer",
		Long:  "Render one code and show it on the Linux framebuffer until Esc, Q or F4 is pressed or the process is interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			res, err := generateFromFlags(cmd, rt)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return display.Show(ctx, rt.cfg.Display.Device, res.Image, rt.logger)
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().String("device", config.DefaultDevice, "framebuffer device")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "inkqr", buildVersion)
		},
	}
}
