package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"cornercase/internal/runner"
)

// Options tunes the human-readable report.
type Options struct {
	// Colorize enables ANSI colors in the summary line.
	Colorize bool
}

// ShouldColorize reports whether w is a terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Failed counts outcomes that carry an error.
func Failed(outcomes []runner.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK() {
			n++
		}
	}
	return n
}

// Outcomes writes one table row per outcome followed by a summary line.
func Outcomes(w io.Writer, outcomes []runner.Outcome, opts Options) error {
	if len(outcomes) == 0 {
		_, err := fmt.Fprintln(w, "No jobs to run")
		return err
	}

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		address := ""
		if o.Result.Minted() {
			address = o.Result.Address.ToBase58()
		}
		rows = append(rows, []string{
			strconv.Itoa(o.Index + 1),
			o.Case,
			o.Name,
			statusLabel(o),
			address,
			detail(o),
			o.Elapsed.Round(10 * time.Millisecond).String(),
		})
	}
	headers := []string{"#", "Case", "Name", "Status", "Address", "Detail", "Elapsed"}
	aligns := []Alignment{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if _, err := fmt.Fprintln(w, Table(headers, rows, aligns)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary(outcomes, opts.Colorize))
	return err
}

func statusLabel(o runner.Outcome) string {
	switch {
	case o.OK():
		return "ok"
	case o.Result.Minted():
		return "partial"
	default:
		return "failed"
	}
}

func detail(o runner.Outcome) string {
	parts := make([]string, 0, len(o.Result.Artifacts)+1)
	for _, a := range o.Result.Artifacts {
		parts = append(parts, a.Label+"="+a.Address)
	}
	if o.Err != nil {
		parts = append(parts, o.Err.Error())
	}
	return strings.Join(parts, "\n")
}

func summary(outcomes []runner.Outcome, colorize bool) string {
	failed := Failed(outcomes)
	line := fmt.Sprintf("%d jobs: %d succeeded, %d failed", len(outcomes), len(outcomes)-failed, failed)

	c := color.New(color.FgGreen, color.Bold)
	if failed > 0 {
		c = color.New(color.FgRed, color.Bold)
	}
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(line)
}

type jsonArtifact struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

type jsonOutcome struct {
	Index     int            `json:"index"`
	Case      string         `json:"case"`
	Name      string         `json:"name"`
	OK        bool           `json:"ok"`
	Address   string         `json:"address,omitempty"`
	Artifacts []jsonArtifact `json:"artifacts,omitempty"`
	Error     string         `json:"error,omitempty"`
	ElapsedMS int64          `json:"elapsed_ms"`
}

// JSON writes outcomes as an indented JSON array in launch order.
func JSON(w io.Writer, outcomes []runner.Outcome) error {
	out := make([]jsonOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		item := jsonOutcome{
			Index:     o.Index,
			Case:      o.Case,
			Name:      o.Name,
			OK:        o.OK(),
			ElapsedMS: o.Elapsed.Milliseconds(),
		}
		if o.Result.Minted() {
			item.Address = o.Result.Address.ToBase58()
		}
		for _, a := range o.Result.Artifacts {
			item.Artifacts = append(item.Artifacts, jsonArtifact{Label: a.Label, Address: a.Address})
		}
		if o.Err != nil {
			item.Error = o.Err.Error()
		}
		out = append(out, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
