package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/nft"
	"cornercase/internal/report"
	"cornercase/internal/runner"
)

func sampleOutcomes() []runner.Outcome {
	minted := types.NewAccount().PublicKey
	partial := nft.Result{Address: types.NewAccount().PublicKey}
	partial.AddArtifact("collection", types.NewAccount().PublicKey)
	return []runner.Outcome{
		{Index: 0, Case: "no-image", Name: "No Image", Result: nft.Result{Address: minted}, Elapsed: 1200 * time.Millisecond},
		{Index: 1, Case: "collection", Name: "Verified Collection", Result: partial, Err: errors.New("verify collection: boom")},
		{Index: 2, Case: "immutable", Name: "Immutable", Err: errors.New("create: rpc down")},
	}
}

func TestOutcomesTable(t *testing.T) {
	outcomes := sampleOutcomes()
	var buf bytes.Buffer
	if err := report.Outcomes(&buf, outcomes, report.Options{}); err != nil {
		t.Fatalf("Outcomes returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"No Image",
		outcomes[0].Result.Address.ToBase58(),
		"partial",
		"verify collection: boom",
		"collection=" + outcomes[1].Result.Artifacts[0].Address,
		"failed",
		"3 jobs: 1 succeeded, 2 failed",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("colors should be disabled")
	}
	if strings.Index(out, "No Image") > strings.Index(out, "Immutable") {
		t.Fatal("rows should follow launch order")
	}
}

func TestOutcomesColorizedSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Outcomes(&buf, sampleOutcomes()[:1], report.Options{Colorize: true}); err != nil {
		t.Fatalf("Outcomes returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI colors in %q", buf.String())
	}
}

func TestOutcomesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Outcomes(&buf, nil, report.Options{}); err != nil {
		t.Fatalf("Outcomes returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "No jobs") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	outcomes := sampleOutcomes()
	var buf bytes.Buffer
	if err := report.JSON(&buf, outcomes); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	var decoded []struct {
		Index     int    `json:"index"`
		Case      string `json:"case"`
		OK        bool   `json:"ok"`
		Address   string `json:"address"`
		Error     string `json:"error"`
		ElapsedMS int64  `json:"elapsed_ms"`
		Artifacts []struct {
			Label string `json:"label"`
		} `json:"artifacts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d entries, want 3", len(decoded))
	}
	if !decoded[0].OK || decoded[0].ElapsedMS != 1200 || decoded[0].Address == "" {
		t.Fatalf("first entry = %+v", decoded[0])
	}
	if decoded[1].OK || decoded[1].Address == "" || len(decoded[1].Artifacts) != 1 {
		t.Fatalf("partial entry = %+v", decoded[1])
	}
	if decoded[2].Address != "" || decoded[2].Error != "create: rpc down" {
		t.Fatalf("failed entry = %+v", decoded[2])
	}
}

func TestFailed(t *testing.T) {
	if got := report.Failed(sampleOutcomes()); got != 2 {
		t.Fatalf("Failed = %d, want 2", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if report.ShouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestLamports(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 lamports (0 SOL)"},
		{5000, "5,000 lamports (0.000005 SOL)"},
		{890880, "890,880 lamports (0.00089088 SOL)"},
		{2_500_000_000, "2,500,000,000 lamports (2.5 SOL)"},
	}
	for _, tt := range tests {
		if got := report.Lamports(tt.in); got != tt.want {
			t.Fatalf("Lamports(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTablePadsShortRows(t *testing.T) {
	out := report.Table([]string{"A", "B"}, [][]string{{"only"}}, nil)
	if !strings.Contains(out, "only") || !strings.Contains(out, "╭") {
		t.Fatalf("unexpected table %q", out)
	}
	if report.Table(nil, nil, nil) != "" {
		t.Fatal("no headers should render nothing")
	}
}
