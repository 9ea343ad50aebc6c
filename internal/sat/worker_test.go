package sat

import "sync/atomic"

// noopStation discards everything shared with it and never has anything
// to ingest; it lets tests build a Worker without a real mailbox.
type noopStation struct{}

func (noopStation) ShareUnit(Literal)                     {}
func (noopStation) ShareBinary(Literal, Literal)          {}
func (noopStation) ShareClause(uint16, uint32, []Literal) {}
func (noopStation) Detach(uint16, uint32)                 {}
func (noopStation) Flush()                                {}
func (noopStation) Ingest() []PeerMessage                 { return nil }

func newTestWorker(nVars int) *Worker {
	var exitFlag atomic.Bool
	return NewWorker(0, 1, nVars, 1, &exitFlag, noopStation{}, NoopPlugin{}, DefaultOptions)
}
