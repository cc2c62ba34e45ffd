package battle

// DummyEvent carries no payload. It exists to exercise the kernel,
// history, and sink fan-out without touching entity state — most
// useful in tests and examples that just need "some event happened".
type DummyEvent struct{}

// Kind implements Event.
func (DummyEvent) Kind() Kind { return KindDummyEvent }

// Verify implements Event; DummyEvent has no preconditions.
func (DummyEvent) Verify(VerifyContext) error { return nil }

// Apply implements Event; DummyEvent mutates nothing.
func (DummyEvent) Apply(ApplyContext) error { return nil }

// Clone implements Event.
func (e DummyEvent) Clone() Event { return DummyEvent{} }

// TargetTeam implements Event; DummyEvent carries no team reference.
func (DummyEvent) TargetTeam(*Battle) (TeamID, bool) { return "", false }
