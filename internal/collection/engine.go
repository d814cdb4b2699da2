// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package collection implements the device scheduler and collection engine
// described in spec.md §4.3 and §5: it drives one domain.Collection to
// completion against an agent.Client, enforcing the "at most one in-flight
// request per device" invariant structurally rather than by convention.
package collection

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mkfort/confpull/internal/agent"
	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
)

// CredentialLookup resolves the auth token to attach to every request for a
// device, given its name and the recipe's vendor tag. Implementations
// should return "" when no credential is configured.
type CredentialLookup func(device, vendor string) string

// Engine drives one domain.Collection to completion. It owns the per-device
// dispatch loop; Collection.Results is mutated only through Engine's mutex,
// per spec.md §5(a).
type Engine struct {
	Collection *domain.Collection
	Client     agent.Client
	BasePath   string

	// Credentials, if set, is consulted once per dispatched request and the
	// resulting token (if any) is attached as Args["auth_token"] and
	// registered with the redact package, which strips it from the error
	// report and from the CLI's final error message. Records logged through
	// slog are not passed through the redact package.
	Credentials    CredentialLookup
	RegisterSecret func(string)

	mu sync.Mutex

	dispatched int64
	received   int64
}

// Build resolves recipe's device set against client and constructs the
// Collection that Run will drive. When the recipe's regex matches no device,
// the returned error wraps agent.ErrNoAgents (test it with errors.Is).
func Build(ctx context.Context, client agent.Client, recipe domain.Recipe, ruleSet *domain.RuleSet, commandTimeout, collectionTimeout time.Duration, basePath string) (*Engine, error) {
	infos, err := client.DevicesInfo(ctx, recipe.DeviceRegex)
	if err != nil {
		return nil, fmt.Errorf("collection: resolving devices for recipe %q: %w", recipe.Name, err)
	}

	devices := make([]string, 0, len(infos))
	for name := range infos {
		devices = append(devices, name)
	}
	sort.Strings(devices)

	col := domain.NewCollection(recipe, devices, ruleSet, commandTimeout, collectionTimeout)
	return &Engine{Collection: col, Client: client, BasePath: basePath}, nil
}

// Stats reports dispatch/completion counters for testing invariant 8
// ("num_resp_received == num_resp_target" iff the completion signal fired).
type Stats struct {
	Dispatched int64
	Received   int64
}

// Stats returns a snapshot of the engine's dispatch/completion counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Dispatched: atomic.LoadInt64(&e.dispatched),
		Received:   atomic.LoadInt64(&e.received),
	}
}

// queuedAction pairs an Action with the Rule it belongs to, flattened in
// the fixed order Rules/Actions are declared so every device processes the
// identical sequence (only Args.DeviceName varies per dispatch).
type queuedAction struct {
	rule   *domain.Rule
	action domain.Action
}

func flattenActions(rules []*domain.Rule) []queuedAction {
	var out []queuedAction
	for _, r := range rules {
		for _, a := range r.Actions {
			out = append(out, queuedAction{rule: r, action: a})
		}
	}
	return out
}

// Run drives every device's queue to completion or until collection_timeout
// elapses. One goroutine per device, coordinated by an errgroup.Group;
// within a device's goroutine requests are strictly sequential, so no two
// requests for the same device are ever outstanding at once. Run never
// returns an error of its own: a collection_timeout is not a failure, it is
// the documented upper bound after which outstanding actions are
// synthesized as StatusError results (spec.md §5, §8 invariant 8).
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.Collection.CollectionTimeout)
	defer cancel()
	e.Collection.Start = time.Now()

	queue := flattenActions(e.Collection.Rules)

	var g errgroup.Group
	for _, device := range e.Collection.Devices {
		device := device
		g.Go(func() error {
			e.runDevice(ctx, device, queue)
			return nil
		})
	}
	return g.Wait()
}

// runDevice processes queue in order for device, skipping any action whose
// rule has already stopped for this device (spec.md §4.3 step 6/§4.4).
func (e *Engine) runDevice(ctx context.Context, device string, queue []queuedAction) {
	for _, qa := range queue {
		if qa.rule.Stopped(device) {
			continue
		}

		resp, ok := e.dispatch(ctx, device, qa)
		if !ok {
			e.synthesizeTimeout(device, qa)
			continue
		}
		e.handleResponse(device, qa, resp)
	}
}

// dispatch issues one request and blocks until its callback fires or ctx is
// done. The response channel has capacity 1: the callback can never block
// on a send, and this goroutine never issues a second request for device
// before this one's channel read returns, so at most one request per
// device is ever outstanding.
func (e *Engine) dispatch(ctx context.Context, device string, qa queuedAction) (agent.Response, bool) {
	args := make(map[string]string, len(qa.action.Args)+1)
	for k, v := range qa.action.Args {
		args[k] = v
	}
	args["device_name"] = device

	if e.Credentials != nil {
		if token := e.Credentials(device, e.Collection.Recipe.Vendor); token != "" {
			args["auth_token"] = token
			if e.RegisterSecret != nil {
				e.RegisterSecret(token)
			}
		}
	}

	req := agent.Request{
		DeviceName: device,
		Method:     qa.action.Method,
		Args:       args,
		Timeout:    e.Collection.CommandTimeout,
	}

	respCh := make(chan agent.Response, 1)
	atomic.AddInt64(&e.dispatched, 1)
	e.Client.ExecRequest(ctx, req, func(r agent.Response) { respCh <- r })

	select {
	case r := <-respCh:
		atomic.AddInt64(&e.received, 1)
		return r, true
	case <-ctx.Done():
		return agent.Response{}, false
	}
}

// synthesizeTimeout records a StatusError result for an action abandoned
// because collection_timeout elapsed before its response arrived.
func (e *Engine) synthesizeTimeout(device string, qa queuedAction) {
	status := qa.rule.Finish(device, true)
	e.store(device, qa, &domain.Result{
		Rule:         qa.rule,
		DeviceName:   device,
		Key:          qa.action.Key,
		Status:       status,
		ErrorMessage: "collection timed out waiting for response",
	})
}

// handleResponse classifies resp per spec.md §4.3 step 4/§7: a transport
// error or a device-reported error (detected by the filter pipeline) both
// count as an errored action for the rule's handling policy; a successful
// binary or filtered response counts as OK; a filter Skip is recorded as
// StatusIgnore without ever touching the rule's run state, since an IGNORE
// is not terminal for AllRequired/FirstOrAllOthers sequencing (spec.md §4.3
// scenario S3).
func (e *Engine) handleResponse(device string, qa queuedAction, resp agent.Response) {
	if resp.Err != nil {
		status := qa.rule.Finish(device, true)
		e.store(device, qa, &domain.Result{
			Rule: qa.rule, DeviceName: device, Key: qa.action.Key,
			Status: status, ErrorMessage: resp.Err.Error(),
		})
		return
	}

	if qa.action.Binary {
		status := qa.rule.Finish(device, false)
		out := resp.Output
		e.store(device, qa, &domain.Result{
			Rule: qa.rule, DeviceName: device, Key: qa.action.Key,
			Status: status, Output: &out,
		})
		return
	}

	outcome, crashMsg := runFilter(qa.action, resp.Output)
	switch {
	case crashMsg != "":
		status := qa.rule.Finish(device, true)
		e.store(device, qa, &domain.Result{
			Rule: qa.rule, DeviceName: device, Key: qa.action.Key,
			Status: status, ErrorMessage: crashMsg,
		})
	case outcome.Skipped:
		e.store(device, qa, &domain.Result{
			Rule: qa.rule, DeviceName: device, Key: qa.action.Key,
			Status: domain.StatusIgnore,
		})
	case outcome.DeviceError:
		status := qa.rule.Finish(device, true)
		e.store(device, qa, &domain.Result{
			Rule: qa.rule, DeviceName: device, Key: qa.action.Key,
			Status: status, ErrorMessage: outcome.Message,
		})
	default:
		status := qa.rule.Finish(device, false)
		text := outcome.Text
		e.store(device, qa, &domain.Result{
			Rule: qa.rule, DeviceName: device, Key: qa.action.Key,
			Status: status, Output: &text,
		})
	}
}

// runFilter runs the action's filter pipeline, recovering a panic into an
// ERROR diagnostic — the Go analogue of spec.md §7's "pipeline crash" error
// kind, since filter.Run is otherwise a pure, non-panicking function for
// every shipped rule-set.
func runFilter(action domain.Action, raw string) (outcome filter.Outcome, crashMsg string) {
	defer func() {
		if r := recover(); r != nil {
			crashMsg = fmt.Sprintf("filter: %v", r)
		}
	}()
	if action.Filter == nil {
		return filter.Null(raw), ""
	}
	return filter.Run(raw, action.Filter()), ""
}

// store resolves the Target for (device, qa) and appends result to the
// Collection, serialized by e.mu per spec.md §5(a).
func (e *Engine) store(device string, qa queuedAction, result *domain.Result) {
	target := e.resolveTarget(device, qa)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.Collection.AddResult(target, result)
}

// resolveTarget applies the override chain action > rule > rule-set default
// (spec.md §4.2/§4.3) and binds the result to BasePath/Recipe.Path.
func (e *Engine) resolveTarget(device string, qa queuedAction) *domain.Target {
	def := e.Collection.RuleSet.DefaultTarget
	prefix, suffix, binary, header := def.FilePrefix, def.FileSuffix, def.Binary, e.Collection.RuleSet.Header

	if qa.rule.Target != nil {
		prefix, suffix, binary, header = applyOverride(qa.rule.Target, prefix, suffix, binary, header)
	}
	if qa.action.Target != nil {
		prefix, suffix, binary, header = applyOverride(qa.action.Target, prefix, suffix, binary, header)
	}
	if qa.action.Binary {
		binary = true
	}

	t := e.Collection.Targets.Get(e.Collection, device, prefix, suffix, binary)
	t.BasePath = filepath.Join(e.BasePath, e.Collection.Recipe.Path)
	t.Header = header
	return t
}

func applyOverride(override *domain.Target, prefix, suffix string, binary bool, header string) (string, string, bool, string) {
	if override.FilePrefix != "" {
		prefix = override.FilePrefix
	}
	if override.FileSuffix != "" {
		suffix = override.FileSuffix
	}
	if override.Binary {
		binary = true
	}
	if override.Header != "" {
		header = override.Header
	}
	return prefix, suffix, binary, header
}
