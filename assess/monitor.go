package assess

import (
	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/text"
)

// Monitor provides hooks to observe a title assessment.
// Implement this interface to trace intermediate steps and results.
type Monitor interface {
	Start(paper core.Paper)
	AfterExactMatchRequest(request text.ExactMatchRequest)
	AfterLocate(phrase string, occurrence text.Occurrence)
	AfterCoverage(forms *core.TopicForms, percent float64)
	Finish(result core.MatchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.Paper) {}
func (n *noopMonitor) AfterExactMatchRequest(_ text.ExactMatchRequest) {}
func (n *noopMonitor) AfterLocate(_ string, _ text.Occurrence) {}
func (n *noopMonitor) AfterCoverage(_ *core.TopicForms, _ float64) {}
func (n *noopMonitor) Finish(_ core.MatchResult) {}
