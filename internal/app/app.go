// Package app implements the application layer for pkgscout.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/core/ports"
	"github.com/pkgscout/pkgscout/internal/engine/discovery"
	"github.com/pkgscout/pkgscout/internal/engine/selection"
	"github.com/pkgscout/pkgscout/internal/ui/output"
	"github.com/pkgscout/pkgscout/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	describer    ports.Describer
	cache        ports.PackageCache
	walker       ports.Walker
	prompter     ports.Prompter
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	describer ports.Describer,
	cache ports.PackageCache,
	walker ports.Walker,
	prompter ports.Prompter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		describer:    describer,
		cache:        cache,
		walker:       walker,
		prompter:     prompter,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput redirects result output away from stdout.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Options configuration shared by the Scan and Pick workflows. Zero
// values defer to the loaded configuration.
type Options struct {
	Root       string
	Exclude    []string
	Jobs       int
	Sequential bool
	JSON       bool
}

// Scan discovers the packages under the workspace root and prints the
// filtered, ordered dependency options without prompting.
func (a *App) Scan(ctx context.Context, opts Options) error {
	ordered, err := a.collect(ctx, opts)
	if err != nil {
		return err
	}

	if len(ordered) == 0 {
		a.logger.Info("no dependency options found")
		return nil
	}

	if opts.JSON {
		return a.writeJSON(ordered)
	}
	return a.renderOptions(ordered)
}

// Pick runs the full interactive flow: discover, filter, order, prompt,
// resolve and group, then prints the grouped selections.
func (a *App) Pick(ctx context.Context, opts Options) error {
	ordered, err := a.collect(ctx, opts)
	if err != nil {
		return err
	}

	if len(ordered) == 0 {
		a.logger.Info("no dependency options found")
		return nil
	}

	answer, err := a.prompter.Ask(ordered)
	if err != nil {
		return err
	}

	selected := selection.Resolve(answer, ordered)
	if len(selected) == 0 {
		a.logger.Info("nothing selected")
		return nil
	}

	grouped := selection.Group(selected)
	if opts.JSON {
		return a.writeJSON(grouped)
	}
	return a.renderSelections(grouped)
}

// Clean removes the persistent package cache.
func (a *App) Clean(_ context.Context) error {
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.logger.Info("package cache cleared")
	return nil
}

// collect runs the shared pipeline up to the ordered option list.
func (a *App) collect(ctx context.Context, opts Options) ([]domain.Option, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDiscoveryFailed.Error())
	}

	settings, err := a.settings(root, opts)
	if err != nil {
		return nil, err
	}

	strategy := discovery.New(discovery.Deps{
		Describer: a.describer,
		Cache:     a.cache,
		Walker:    a.walker,
		Logger:    a.logger,
	}, settings)

	packages, err := strategy.Discover(ctx, root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDiscoveryFailed.Error())
	}
	if settings.Verbose {
		a.logger.Info(fmt.Sprintf("discovered %d package(s) under %s", len(packages), root))
	}

	options := selection.BuildOptions(packages, root)
	filtered, removed := selection.Exclude(options, settings.ExcludedPackages)
	if removed > 0 {
		a.logger.Info(fmt.Sprintf("excluded %d option(s) via patterns: %s",
			removed, strings.Join(settings.ExcludedPackages, ", ")))
	}

	return selection.Order(filtered), nil
}

// settings loads the configuration for the workspace and applies the
// command line overrides on top.
func (a *App) settings(root string, opts Options) (domain.Settings, error) {
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Settings{}, err
	}

	if len(opts.Exclude) > 0 {
		settings.ExcludedPackages = opts.Exclude
	}
	if opts.Jobs > 0 {
		settings.Concurrency = opts.Jobs
	}
	if opts.Sequential {
		settings.Sequential = true
	}
	return settings, nil
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) renderOptions(options []domain.Option) error {
	term := output.New(a.out)

	for i, opt := range options {
		index := style.Index.Render(fmt.Sprintf("%3d)", i+1))
		name := style.Product.Render(opt.ProductName)
		where := style.Muted.Render(fmt.Sprintf("%s (%s)", opt.PackageName, opt.DisplayPath))
		if _, err := term.WriteString(fmt.Sprintf("%s %s  %s\n", index, name, where)); err != nil {
			return err
		}
	}

	_, err := term.WriteString(style.Muted.Render(
		fmt.Sprintf("\n%d dependency option(s)\n", len(options))))
	return err
}

func (a *App) renderSelections(grouped []domain.Selection) error {
	term := output.New(a.out)

	for _, sel := range grouped {
		line := fmt.Sprintf("%s %s  %s\n",
			style.Success.Render(style.Check),
			style.Product.Render(sel.PackageName),
			style.Muted.Render(strings.Join(sel.Products, ", ")))
		if _, err := term.WriteString(line); err != nil {
			return err
		}
	}

	_, err := term.WriteString(style.Muted.Render(
		fmt.Sprintf("\n%d package(s) selected\n", len(grouped))))
	return err
}
