package battle

import "github.com/battlekit/engine/metrics"

// ApplyImpact feeds one ability-produced Impact to FightRules. Verify
// always succeeds: an impact is trusted, pre-validated output of the
// ability that produced it, not something the kernel can second-guess
// generically.
type ApplyImpact struct {
	Impact Impact
}

// Kind implements Event.
func (e *ApplyImpact) Kind() Kind { return KindApplyImpact }

// Verify implements Event; the server trusts the impacts it is asked to apply.
func (e *ApplyImpact) Verify(VerifyContext) error { return nil }

// Apply implements Event.
func (e *ApplyImpact) Apply(ctx ApplyContext) error {
	if ctx.Battle.Rules.Fight == nil {
		return nil
	}
	ctx.Battle.Rules.Fight.ApplyImpact(ctx.Battle, e.Impact, ctx.Queue, ctx.Entropy, ctx.Metrics)
	ctx.Metrics.AddSystemU64(metrics.ImpactsApplied, 1)
	return nil
}

// Clone implements Event.
func (e *ApplyImpact) Clone() Event {
	return &ApplyImpact{Impact: e.Impact}
}

// TargetTeam implements Event; an impact may cross team lines, so no
// single team can serve as its authorization target.
func (e *ApplyImpact) TargetTeam(*Battle) (TeamID, bool) { return "", false }
