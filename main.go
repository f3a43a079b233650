package main

import (
	"context"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"macTime/config"
	"macTime/i18n"
	"macTime/ui"
	"macTime/window"
)

const appID = "io.github.mactime"

type options struct {
	configPath string
	open       string
	lang       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "mactime",
		Short:         "Stopwatch, countdown timer and alarms in small floating windows",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.mactime/config.yaml)")
	cmd.Flags().StringVar(&opts.open, "open", "", "tool to open at startup: stopwatch, timer or alarm")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "interface language (en, pt, es, ru)")
	return cmd
}

func run(opts *options) error {
	var openKind window.Kind
	if opts.open != "" {
		k, ok := window.ParseKind(opts.open)
		if !ok || k == window.KindFullScreen {
			return errors.Errorf("unknown tool %q", opts.open)
		}
		openKind = k
	}

	cfgManager, err := config.NewManager(opts.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	cfg := cfgManager.GetConfig()
	if opts.lang != "" {
		cfg.Language = opts.lang
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a := NewAppManager(fyneApp, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := cfgManager.Watch(ctx, func(c *config.Config) {
		if opts.lang != "" {
			c.Language = opts.lang
		}
		a.ApplyConfig(c)
	}); err != nil {
		log.Printf("Config changes will need a restart: %v", err)
	}

	w := ui.CreateMainWindow(a, fyneApp, float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))
	w.SetMaster()
	w.SetOnClosed(func() {
		a.Shutdown()
		cancel()
	})
	if ui.InstallTrayMenu(a, fyneApp) {
		log.Println("System tray menu installed")
	}

	if opts.open != "" {
		a.OpenWindow(openKind)
	}
	log.Printf("Language: %s", i18n.GetLang())

	w.ShowAndRun()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("mactime: %v", err)
		os.Exit(1)
	}
}
