// Package activity aggregates Claude Code session usage per project from
// the JSONL session logs under ~/.claude/projects/.
package activity

// Pricing holds per-million-token rates in USD for one model.
type Pricing struct {
	Input      float64
	Output     float64
	CacheRead  float64
	CacheWrite float64
}

// pricingTable maps model IDs to their token rates. Unknown models fall
// back to defaultPricing.
var pricingTable = map[string]Pricing{
	"claude-opus-4-5-20251101":   {Input: 15.00, Output: 75.00, CacheRead: 1.50, CacheWrite: 18.75},
	"claude-sonnet-4-20250514":   {Input: 3.00, Output: 15.00, CacheRead: 0.30, CacheWrite: 3.75},
	"claude-3-5-sonnet-20241022": {Input: 3.00, Output: 15.00, CacheRead: 0.30, CacheWrite: 3.75},
	"claude-3-5-haiku-20241022":  {Input: 0.80, Output: 4.00, CacheRead: 0.08, CacheWrite: 1.00},
}

var defaultPricing = Pricing{Input: 3.00, Output: 15.00, CacheRead: 0.30, CacheWrite: 3.75}

// PricingFor returns the pricing for a model, falling back to the default.
func PricingFor(model string) Pricing {
	if p, ok := pricingTable[model]; ok {
		return p
	}
	return defaultPricing
}

// Cost computes the dollar cost of a session's token usage.
func (s *SessionStats) Cost() float64 {
	p := PricingFor(s.Model)
	const million = 1_000_000
	return float64(s.InputTokens)/million*p.Input +
		float64(s.OutputTokens)/million*p.Output +
		float64(s.CacheReadTokens)/million*p.CacheRead +
		float64(s.CacheWriteTokens)/million*p.CacheWrite
}
