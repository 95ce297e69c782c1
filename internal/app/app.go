// Package app implements the application layer for rodata.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/rodata/internal/adapters/detector"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/rodata/internal/engine/planner"
	"go.trai.ch/rodata/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	planner      *planner.Planner
	scheduler    *scheduler.Scheduler
	store        ports.BuildInfoStore
	tools        ports.ToolResolver
	watcher      ports.Watcher
	tracer       ports.Tracer
	logger       ports.Logger
	format       detector.Format
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	plnr *planner.Planner,
	sched *scheduler.Scheduler,
	store ports.BuildInfoStore,
	tools ports.ToolResolver,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
	format detector.Format,
) *App {
	return &App{
		configLoader: loader,
		planner:      plnr,
		scheduler:    sched,
		store:        store,
		tools:        tools,
		watcher:      watcher,
		tracer:       tracer,
		logger:       log,
		format:       format,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory the workspace is discovered from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

type logConfigurer interface {
	SetJSON(enable bool)
	SetColor(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging applies the --log-format flag on top of the detected format.
func (a *App) ConfigureLogging(formatFlag string, verbose bool) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	switch detector.ResolveFormat(a.format, formatFlag) {
	case detector.FormatJSON:
		lc.SetJSON(true)
	case detector.FormatPlain:
		lc.SetJSON(false)
		lc.SetColor(false)
	default:
		lc.SetJSON(false)
		lc.SetColor(true)
	}
	lc.SetVerbose(verbose)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	NoCache bool
	Jobs    int
}

// Build plans the workspace and builds the steps selected by targets, or every step when
// targets is empty.
func (a *App) Build(ctx context.Context, targets []string, opts BuildOptions) error {
	plan, err := a.plan(targets)
	if err != nil {
		return err
	}

	if plan.Graph.StepCount() == 0 {
		return domain.ErrNoResources
	}

	err = a.scheduler.Run(ctx, plan, scheduler.Options{Parallelism: opts.Jobs, NoCache: opts.NoCache})
	if err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

func (a *App) plan(targets []string) (*planner.Plan, error) {
	ws, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	plan, err := a.planner.Plan(ws)
	if err != nil {
		return nil, err
	}

	return plan.Select(targets)
}

// Shutdown flushes pending telemetry. It is called once when the process exits.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

// StepDescription is the planned command of one step as printed by describe.
type StepDescription struct {
	Step        string   `yaml:"step"`
	Descr       string   `yaml:"descr"`
	Color       string   `yaml:"color,omitempty"`
	Inputs      []string `yaml:"inputs"`
	Outputs     []string `yaml:"outputs"`
	Tools       []string `yaml:"tools,omitempty"`
	Flags       []string `yaml:"flags,omitempty"`
	CommandLine []string `yaml:"command_line,omitempty"`
}

// Describe writes the planned commands for targets to w as YAML documents, without running them.
func (a *App) Describe(_ context.Context, w io.Writer, targets []string) error {
	plan, err := a.plan(targets)
	if err != nil {
		return err
	}
	if plan.Graph.StepCount() == 0 {
		return domain.ErrNoResources
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() {
		_ = enc.Close()
	}()

	for step := range plan.Graph.Walk() {
		cmd, ok := plan.Command(step.Name)
		if !ok {
			continue
		}
		if err := enc.Encode(a.describe(plan.Workspace, step, cmd)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to encode step description"), "step", step.Name.String())
		}
	}
	return nil
}

func (a *App) describe(ws *domain.Workspace, step domain.Step, cmd ports.Command) StepDescription {
	d := StepDescription{
		Step:    step.Name.String(),
		Descr:   step.Descr.String(),
		Color:   step.Descr.Color,
		Inputs:  cmd.Inputs(),
		Outputs: cmd.Outputs(),
		Tools:   cmd.Tools(),
		Flags:   cmd.Flags(),
	}

	liner, ok := cmd.(ports.CommandLiner)
	if !ok || len(d.Tools) == 0 {
		return d
	}

	binary, err := a.tools.Resolve(ws, d.Tools[0])
	if err != nil {
		a.logger.Debug("tool not resolved, showing its identifier", "tool", d.Tools[0], "error", err.Error())
		binary = d.Tools[0]
	}
	d.CommandLine = liner.CommandLine(binary)
	return d
}

// Clean removes the build info store and the build root of the workspace.
func (a *App) Clean(_ context.Context) error {
	ws, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	a.logger.Info("removing build info store...")
	if err := a.store.Reset(ws.Root); err != nil {
		errs = errors.Join(errs, err)
	}

	a.logger.Info("removing build root...", "path", ws.BuildRoot)
	if err := os.RemoveAll(ws.BuildRoot); err != nil {
		errs = errors.Join(errs, zerr.With(zerr.Wrap(domain.ErrCleanFailed, err.Error()), "path", ws.BuildRoot))
	}

	return errs
}
