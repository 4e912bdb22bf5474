// Command gdpchart-render fetches the GDP dataset once and writes the projected chart
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gdpchart/internal/adapters/render"
	"gdpchart/internal/adapters/source/gdp"
	"gdpchart/internal/core/chart"
	"gdpchart/internal/core/version"
	"gdpchart/internal/platform/config"
	"gdpchart/internal/platform/logger"
	"gdpchart/internal/platform/metrics"
	"gdpchart/internal/services/chart/domain"
	"gdpchart/internal/services/chart/service"
)

const formatJSON = "json"

func main() {
	version.SetService("gdpchart-render")

	// a CLI stays quiet unless asked otherwise
	lo := logger.FromEnv()
	lo.Component = "render"
	if config.App().Prefix("LOG_").MayString("LEVEL", "") == "" {
		lo.Level = "warn"
	}
	logger.Init(lo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", service.Message(err))
		os.Exit(1)
	}
}

type flags struct {
	source, file, format, out, title string
	layout, money                    string
	width, height, padding           float64
	src                              gdp.Options
	version                          bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	cfg := config.App()
	src := gdp.OptionsFrom(cfg)
	def := service.DefaultsFrom(cfg)

	var f flags
	fs := flag.NewFlagSet("gdpchart-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.source, "source", src.URL, "dataset URL")
	fs.StringVar(&f.file, "file", src.File, "local dataset JSON, overrides -source")
	fs.StringVar(&f.format, "format", formatJSON, "output format: json|png|svg|xlsx")
	fs.StringVar(&f.out, "out", "-", "output path, - for stdout")
	fs.StringVar(&f.title, "title", def.Title, "chart title")
	fs.StringVar(&f.layout, "layout", def.Options.Layout.String(), "horizontal layout: index|time")
	fs.StringVar(&f.money, "money", def.Options.Money.String(), "tooltip money format: adaptive|cents|whole")
	fs.Float64Var(&f.width, "width", def.Options.Canvas.Width, "canvas width")
	fs.Float64Var(&f.height, "height", def.Options.Canvas.Height, "canvas height")
	fs.Float64Var(&f.padding, "padding", def.Options.Canvas.Padding, "canvas padding")
	fs.DurationVar(&src.Timeout, "timeout", src.Timeout, "fetch timeout")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if fs.NArg() > 0 {
		return flags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	src.URL, src.File = f.source, f.file
	f.src = src
	return f, nil
}

func (f flags) defaults() (service.Defaults, error) {
	layout, err := chart.ParseLayout(f.layout)
	if err != nil {
		return service.Defaults{}, err
	}
	money, err := chart.ParseMoneyFormat(f.money)
	if err != nil {
		return service.Defaults{}, err
	}
	opt := chart.DefaultOptions()
	opt.Canvas = chart.Canvas{Width: f.width, Height: f.height, Padding: f.padding}
	opt.Layout, opt.Money = layout, money
	return service.Defaults{Options: opt, Title: f.title}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.version {
		_, _ = fmt.Fprintln(stdout, version.Info())
		return nil
	}

	var format render.Format
	if f.format != formatJSON {
		if format, err = render.ParseFormat(f.format); err != nil {
			return err
		}
	}
	def, err := f.defaults()
	if err != nil {
		return err
	}

	loader := service.NewLoader(gdp.Open(f.src), metrics.Nop(), service.WithTimeout(f.src.Timeout))
	if _, err := loader.Load(ctx); err != nil {
		return err
	}
	svc := service.New(loader, def, nil)

	var body []byte
	if format == "" {
		v, err := svc.View(ctx, domain.ChartQuery{})
		if err != nil {
			return err
		}
		if body, err = json.MarshalIndent(v, "", "  "); err != nil {
			return err
		}
		body = append(body, '\n')
	} else if body, err = svc.Render(ctx, domain.ChartQuery{}, format); err != nil {
		return err
	}
	return write(f.out, stdout, body)
}

func write(path string, stdout io.Writer, b []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
