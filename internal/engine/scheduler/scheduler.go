// Package scheduler implements the step execution scheduler.
package scheduler

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/rodata/internal/engine/planner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options tune a single run.
type Options struct {
	// Parallelism bounds the number of steps running at once. Zero or less means runtime.NumCPU().
	Parallelism int
	// NoCache runs every step regardless of recorded build info.
	NoCache bool
}

// Scheduler manages the execution of steps in the dependency graph.
type Scheduler struct {
	tools    ports.ToolResolver
	store    ports.BuildInfoStore
	hasher   ports.Hasher
	verifier ports.Verifier
	tracer   ports.Tracer
	logger   ports.Logger

	mu         sync.RWMutex
	stepStatus map[domain.InternedString]domain.StepStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	tools ports.ToolResolver,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		tools:      tools,
		store:      store,
		hasher:     hasher,
		verifier:   verifier,
		tracer:     tracer,
		logger:     logger,
		stepStatus: make(map[domain.InternedString]domain.StepStatus),
	}
}

// Status returns the status the given step reached in the last run.
func (s *Scheduler) Status(name domain.InternedString) domain.StepStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.stepStatus[name]; ok {
		return st
	}
	return domain.StepStatusPending
}

func (s *Scheduler) updateStatus(name domain.InternedString, status domain.StepStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepStatus[name] = status
}

// Run executes every step of the plan, honouring dependencies.
// A failed step blocks its dependents; independent steps still run.
func (s *Scheduler) Run(ctx context.Context, plan *planner.Plan, opts Options) error {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}

	state := s.newRunState(ctx, plan, opts)

	planned := make([]string, 0, len(state.steps))
	for step := range plan.Graph.Walk() {
		planned = append(planned, step.Name.String())
	}
	s.tracer.EmitPlan(ctx, planned)

	// Phase 1: resolve every tool binary the plan needs.
	_, span := s.tracer.Start(ctx, "Resolving tools")
	err := state.resolveTools()
	if err != nil {
		span.RecordError(err)
	}
	span.End()
	if err != nil {
		return err
	}

	// Phase 2: hash the inputs of steps whose inputs exist before the run.
	hashCtx, span := s.tracer.Start(ctx, "Hashing inputs")
	err = state.prehash(hashCtx)
	if err != nil {
		span.RecordError(err)
	}
	span.End()
	if err != nil {
		return err
	}

	return state.runExecutionLoop()
}

type result struct {
	step      domain.InternedString
	err       error
	cached    bool
	inputHash string
}

type runState struct {
	s           *Scheduler
	plan        *planner.Plan
	opts        Options
	ctx         context.Context
	steps       map[domain.InternedString]domain.Step
	inDegree    map[domain.InternedString]int
	ready       []domain.InternedString
	active      int
	resultsCh   chan result
	errs        error
	toolPaths   map[string]string
	inputHashes sync.Map // domain.InternedString -> string
}

func (s *Scheduler) newRunState(ctx context.Context, plan *planner.Plan, opts Options) *runState {
	count := plan.Graph.StepCount()
	steps := make(map[domain.InternedString]domain.Step, count)
	inDegree := make(map[domain.InternedString]int, count)

	var ready []domain.InternedString
	for step := range plan.Graph.Walk() {
		steps[step.Name] = step
		inDegree[step.Name] = len(step.Dependencies)
		if len(step.Dependencies) == 0 {
			ready = append(ready, step.Name)
		}
		s.updateStatus(step.Name, domain.StepStatusPending)
	}

	return &runState{
		s:         s,
		plan:      plan,
		opts:      opts,
		ctx:       ctx,
		steps:     steps,
		inDegree:  inDegree,
		ready:     ready,
		resultsCh: make(chan result, opts.Parallelism),
		toolPaths: make(map[string]string),
	}
}

func (state *runState) resolveTools() error {
	for _, step := range state.steps {
		for _, tool := range step.Tools {
			id := tool.String()
			if _, done := state.toolPaths[id]; done {
				continue
			}
			path, err := state.s.tools.Resolve(state.plan.Workspace, id)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "cannot resolve tool"), "step", step.Name.String())
			}
			state.toolPaths[id] = path
		}
	}
	return nil
}

// prehash computes input hashes concurrently for steps without dependencies.
func (state *runState) prehash(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(state.opts.Parallelism)

	for _, name := range state.ready {
		step := state.steps[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hash, err := state.s.hasher.ComputeInputHash(&step, state.toolPath(&step))
			if err != nil {
				return zerr.With(zerr.Wrap(err, "cannot hash inputs"), "step", step.Name.String())
			}
			state.inputHashes.Store(step.Name, hash)
			return nil
		})
	}

	return g.Wait()
}

func (state *runState) toolPath(step *domain.Step) string {
	if len(step.Tools) == 0 {
		return ""
	}
	return state.toolPaths[step.Tools[0].String()]
}

func (state *runState) runExecutionLoop() error {
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil {
			// Cancelled: nothing new is scheduled, drain the running steps.
			state.handleResult(<-state.resultsCh)
			continue
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

func (state *runState) isDone() bool {
	if state.ctx.Err() != nil {
		return state.active == 0
	}
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.opts.Parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(name, domain.StepStatusRunning)

		step := state.steps[name]
		go state.executeStep(&step)
	}
}

func (state *runState) executeStep(step *domain.Step) {
	// The span ends before the result is sent so reporters see it before the run returns.
	res := func() result {
		ctx, span := state.s.tracer.Start(state.ctx, step.Name.String(),
			ports.WithAttribute(ports.SpanAttrDescr, step.Descr.String()),
			ports.WithAttribute(ports.SpanAttrColor, step.Descr.Color),
		)
		defer span.End()

		hash, err := state.inputHash(step)
		if err != nil {
			span.RecordError(err)
			return result{step: step.Name, err: err}
		}

		if !state.opts.NoCache && state.upToDate(step, hash) {
			span.SetAttribute(ports.SpanAttrCached, true)
			return result{step: step.Name, cached: true, inputHash: hash}
		}

		cmd, ok := state.plan.Command(step.Name)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrStepNotFound, "no command planned"), "step", step.Name.String())
			span.RecordError(err)
			return result{step: step.Name, err: err}
		}

		if err := cmd.Run(ctx, state.toolPath(step)); err != nil {
			span.RecordError(err)
			return result{step: step.Name, err: err}
		}
		return result{step: step.Name, inputHash: hash}
	}()

	state.resultsCh <- res
}

func (state *runState) inputHash(step *domain.Step) (string, error) {
	if hash, ok := state.inputHashes.Load(step.Name); ok {
		return hash.(string), nil
	}
	return state.s.hasher.ComputeInputHash(step, state.toolPath(step))
}

// upToDate reports whether the recorded build info matches the step's inputs and outputs.
// Store and verification errors count as a miss.
func (state *runState) upToDate(step *domain.Step, inputHash string) bool {
	info, err := state.s.store.Get(state.plan.Workspace.Root, step.Name.String())
	if err != nil {
		state.s.logger.Warn("ignoring unreadable build info", "step", step.Name.String(), "error", err.Error())
		return false
	}
	if info == nil || info.InputHash != inputHash {
		return false
	}

	outputs := domain.Strings(step.Outputs)
	ok, err := state.s.verifier.VerifyOutputs(outputs)
	if err != nil || !ok {
		return false
	}

	outputHash, err := state.s.hasher.ComputeFileHash(outputs)
	if err != nil {
		return false
	}
	return outputHash == info.OutputHash
}

func (state *runState) handleResult(res result) {
	state.active--

	if res.err != nil {
		wrapped := zerr.With(zerr.Wrap(res.err, domain.ErrStepExecutionFailed.Error()), "step", res.step.String())
		state.errs = errors.Join(state.errs, wrapped)
		state.s.updateStatus(res.step, domain.StepStatusFailed)
		return
	}

	if res.cached {
		state.s.updateStatus(res.step, domain.StepStatusCached)
	} else {
		state.s.updateStatus(res.step, domain.StepStatusCompleted)
		state.record(res)
	}

	for _, dep := range state.plan.Graph.Dependents(res.step) {
		if _, ok := state.steps[dep]; !ok {
			continue
		}
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}

// record stores build info for a completed step. Failing to record only costs a rebuild.
func (state *runState) record(res result) {
	step := state.steps[res.step]
	outputHash, err := state.s.hasher.ComputeFileHash(domain.Strings(step.Outputs))
	if err != nil {
		state.s.logger.Warn("not recording build info", "step", res.step.String(), "error", err.Error())
		return
	}

	err = state.s.store.Put(state.plan.Workspace.Root, domain.BuildInfo{
		StepName:   res.step.String(),
		InputHash:  res.inputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now(),
	})
	if err != nil {
		state.s.logger.Warn("not recording build info", "step", res.step.String(), "error", err.Error())
	}
}
