package activity

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestBuildReport(t *testing.T) {
	claudeDir := t.TempDir()
	writeSessionLog(t, claudeDir, "-home-user-api", "a.jsonl", sampleLog)
	writeSessionLog(t, claudeDir, "-home-user-web", "b.jsonl",
		`{"timestamp":"2026-08-26T10:00:00Z","sessionId":"s3","type":"assistant","message":{"model":"claude-3-5-haiku-20241022","usage":{"input_tokens":10,"output_tokens":5}}}
{"timestamp":"2026-08-26T10:05:00Z","sessionId":"s4","type":"user"}
`)

	report, err := BuildReport(claudeDir, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	if len(report.ByProject) != 2 {
		t.Fatalf("got %d projects, want 2", len(report.ByProject))
	}

	api := report.ByProject["api"]
	if api == nil {
		t.Fatal("project api missing from report")
	}
	if api.Sessions != 2 {
		t.Errorf("api.Sessions = %d, want 2", api.Sessions)
	}
	wantModels := []string{"claude-3-5-haiku-20241022", "claude-sonnet-4-20250514"}
	if len(api.Models) != 2 || api.Models[0] != wantModels[0] || api.Models[1] != wantModels[1] {
		t.Errorf("api.Models = %v, want %v", api.Models, wantModels)
	}

	// s4 has no assistant messages and must not become a session
	if _, ok := report.Sessions["s4"]; ok {
		t.Error("session without assistant messages should be dropped")
	}

	if report.Total.Sessions != 3 {
		t.Errorf("Total.Sessions = %d, want 3", report.Total.Sessions)
	}
	if report.Total.InputTokens != 157 {
		t.Errorf("Total.InputTokens = %d, want 157", report.Total.InputTokens)
	}
	if report.Total.CostUSD <= 0 {
		t.Error("Total.CostUSD should be positive")
	}
}

func TestProjectsByCost(t *testing.T) {
	r := &Report{
		ByProject: map[string]*ProjectStats{
			"cheap":    {CostUSD: 0.01},
			"pricey":   {CostUSD: 4.20},
			"mid":      {CostUSD: 1.00},
			"also-mid": {CostUSD: 1.00},
		},
	}

	got := r.ProjectsByCost()
	want := []string{"pricey", "also-mid", "mid", "cheap"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ProjectsByCost() = %v, want %v", got, want)
		}
	}
}

func TestSessionCost(t *testing.T) {
	s := &SessionStats{
		Model:            "claude-3-5-haiku-20241022",
		InputTokens:      1_000_000,
		OutputTokens:     500_000,
		CacheReadTokens:  2_000_000,
		CacheWriteTokens: 100_000,
	}

	// 0.80 + 0.5*4.00 + 2*0.08 + 0.1*1.00
	want := 0.80 + 2.00 + 0.16 + 0.10
	if got := s.Cost(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Cost() = %f, want %f", got, want)
	}
}

func TestPricingForUnknownModel(t *testing.T) {
	if got := PricingFor("some-future-model"); got != defaultPricing {
		t.Errorf("unknown model should use default pricing, got %+v", got)
	}
}

func TestFormatEmptyReport(t *testing.T) {
	r := &Report{
		Since:     time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local),
		ByProject: map[string]*ProjectStats{},
	}
	out := r.Format()
	if !strings.Contains(out, "No sessions found since 2026-08-26 00:00") {
		t.Errorf("empty report output:\n%s", out)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		if got := groupDigits(tt.n); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
