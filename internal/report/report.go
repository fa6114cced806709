// Package report orchestrates a full compatibility run: the synastry,
// composite, and guna branches execute concurrently, their results feed the
// fusion scorer, and every step is recorded to telemetry.
package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lunastra/concord/internal/chart"
	"github.com/lunastra/concord/internal/composite"
	"github.com/lunastra/concord/internal/fusion"
	"github.com/lunastra/concord/internal/guna"
	"github.com/lunastra/concord/internal/synastry"
	"github.com/lunastra/concord/internal/telemetry"
)

// Branch names used in telemetry events and error reporting.
const (
	BranchSynastry  = "synastry"
	BranchComposite = "composite"
	BranchGuna      = "guna"
)

// Options bundles the per-branch configuration for one run.
type Options struct {
	Synastry  synastry.Options
	Composite composite.Options
	Guna      guna.Options
	Fusion    fusion.Options
}

// DefaultOptions returns the standard configuration for every branch.
func DefaultOptions() Options {
	return Options{
		Synastry:  synastry.DefaultOptions(),
		Composite: composite.DefaultOptions(),
		Guna:      guna.DefaultOptions(),
		Fusion:    fusion.DefaultOptions(),
	}
}

// Analysis is the complete outcome of one run. Branches that failed carry
// their message in BranchErrors and an empty result in the corresponding
// field; the fused Report is always present on success.
type Analysis struct {
	RunID        string            `json:"run_id"`
	Synastry     *synastry.Result  `json:"synastry"`
	Composite    *composite.Chart  `json:"composite"`
	Guna         *guna.Result      `json:"guna,omitempty"`
	Report       *fusion.Report    `json:"report"`
	BranchErrors map[string]string `json:"branch_errors,omitempty"`
}

// Runner executes compatibility runs against a telemetry emitter. A nil
// emitter is valid and disables telemetry.
type Runner struct {
	emitter *telemetry.Emitter
}

// NewRunner returns a Runner writing events to em, which may be nil.
func NewRunner(em *telemetry.Emitter) *Runner {
	return &Runner{emitter: em}
}

// Run performs the full analysis of two charts. Both charts are validated
// up front; after that each branch degrades independently — a failed branch
// is recorded and replaced with an empty result so the fused score still
// lands, reading neutral for whatever could not be computed. The guna branch
// is the usual casualty: charts without a Moon simply skip it.
func (r *Runner) Run(ctx context.Context, a, b *chart.Chart, opts Options) (*Analysis, error) {
	if err := a.Validate("chart A"); err != nil {
		return nil, err
	}
	if err := b.Validate("chart B"); err != nil {
		return nil, err
	}

	a = enriched(a)
	b = enriched(b)

	an := &Analysis{RunID: uuid.NewString()}
	r.emit(telemetry.Event{Kind: telemetry.KindRunStart, RunID: an.RunID})

	var (
		wg      sync.WaitGroup
		synRes  *synastry.Result
		synErr  error
		compRes *composite.Chart
		compErr error
		gunaRes *guna.Result
		gunaErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		r.emit(telemetry.Event{Kind: telemetry.KindBranchStart, RunID: an.RunID, Branch: BranchSynastry})
		synRes, synErr = synastry.Compute(a, b, opts.Synastry)
		r.finish(an.RunID, BranchSynastry, synErr)
	}()
	go func() {
		defer wg.Done()
		r.emit(telemetry.Event{Kind: telemetry.KindBranchStart, RunID: an.RunID, Branch: BranchComposite})
		compRes, compErr = composite.Generate(a, b, opts.Composite)
		r.finish(an.RunID, BranchComposite, compErr)
	}()
	go func() {
		defer wg.Done()
		r.emit(telemetry.Event{Kind: telemetry.KindBranchStart, RunID: an.RunID, Branch: BranchGuna})
		gunaRes, gunaErr = guna.Calculate(a, b, opts.Guna)
		r.finish(an.RunID, BranchGuna, gunaErr)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("report: run %s: %w", an.RunID, err)
	}

	if synErr != nil {
		an.branchFailed(BranchSynastry, synErr)
		synRes = &synastry.Result{}
	}
	if compErr != nil {
		an.branchFailed(BranchComposite, compErr)
		compRes = &composite.Chart{}
	}
	if gunaErr != nil {
		an.branchFailed(BranchGuna, gunaErr)
		gunaRes = nil
	}
	an.Synastry = synRes
	an.Composite = compRes
	an.Guna = gunaRes

	rep, err := fusion.Score(synRes, compRes, gunaRes, opts.Fusion)
	if err != nil {
		return nil, err
	}
	an.Report = rep

	r.emit(telemetry.Event{
		Kind:  telemetry.KindReportDone,
		RunID: an.RunID,
		Data:  map[string]any{"overall": rep.Overall, "failed_branches": len(an.BranchErrors)},
	})
	return an, nil
}

// enriched returns c with its Moon nakshatra filled in when the chart has a
// Moon but no nakshatra yet. The input chart is never mutated.
func enriched(c *chart.Chart) *chart.Chart {
	if c.Nakshatra != nil {
		return c
	}
	moon, ok := c.Planets[chart.Moon]
	if !ok {
		return c
	}
	nk, err := chart.NakshatraFromLongitude(moon.Longitude)
	if err != nil {
		return c
	}
	cp := *c
	cp.Nakshatra = nk
	return &cp
}

func (a *Analysis) branchFailed(branch string, err error) {
	if a.BranchErrors == nil {
		a.BranchErrors = make(map[string]string)
	}
	a.BranchErrors[branch] = err.Error()
}

func (r *Runner) finish(runID, branch string, err error) {
	if err != nil {
		r.emit(telemetry.Event{Kind: telemetry.KindBranchFailed, RunID: runID, Branch: branch, Data: err.Error()})
		return
	}
	r.emit(telemetry.Event{Kind: telemetry.KindBranchDone, RunID: runID, Branch: branch})
}

func (r *Runner) emit(evt telemetry.Event) {
	evt.Timestamp = time.Now().UTC()
	_ = r.emitter.Emit(evt)
}
