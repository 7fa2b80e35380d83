package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gookit/color"

	"pgdatadiff/model"
	"pgdatadiff/util"
)

// Summary counts the results of a run by status.
type Summary struct {
	Compared int
	Same     int
	Diff     int
	Unknown  int
}

func Summarize(outputs []model.DiffOutput) Summary {
	s := Summary{Compared: len(outputs)}
	for _, o := range outputs {
		switch o.Status() {
		case model.StatusSame:
			s.Same++
		case model.StatusDiff:
			s.Diff++
		default:
			s.Unknown++
		}
	}
	return s
}

func (self Summary) HasDiff() bool {
	return self.Diff > 0
}

func (self Summary) String() string {
	return fmt.Sprintf("compared: %d, identical: %d, differing: %d, not comparable: %d", self.Compared, self.Same, self.Diff, self.Unknown)
}

// Line renders one result; colored output is green for identical, red for differing, yellow otherwise.
func Line(o model.DiffOutput, colored bool) string {
	text := o.String()
	if !colored {
		return text
	}
	switch o.Status() {
	case model.StatusSame:
		return color.Green.Sprint(text)
	case model.StatusDiff:
		return color.Red.Sprint(text)
	}
	return color.Yellow.Sprint(text)
}

// Print writes every result line followed by the summary.
func Print(w io.Writer, outputs []model.DiffOutput, colored bool) error {
	for _, o := range outputs {
		if _, err := fmt.Fprintln(w, Line(o, colored)); err != nil {
			return fmt.Errorf("Print -> %w", err)
		}
	}
	summary := Summarize(outputs)
	text := summary.String()
	if colored && summary.HasDiff() {
		text = color.Red.Sprint(text)
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("Print -> %w", err)
	}
	return nil
}

var csvHeader = []string{"name", "kind", "result", "message"}

func resultText(status model.Status) string {
	switch status {
	case model.StatusSame:
		return "yes"
	case model.StatusDiff:
		return "no"
	}
	return "unknown"
}

// RenderCSV returns the results as CSV, one row per result in run order.
func RenderCSV(outputs []model.DiffOutput) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("RenderCSV -> %w", err)
	}
	for _, o := range outputs {
		if err := w.Write([]string{o.Name(), o.Kind(), resultText(o.Status()), o.String()}); err != nil {
			return "", fmt.Errorf("RenderCSV -> %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("RenderCSV -> %w", err)
	}
	return buf.String(), nil
}

func WriteCSV(filename string, outputs []model.DiffOutput) error {
	text, err := RenderCSV(outputs)
	if err != nil {
		return fmt.Errorf("WriteCSV -> %w", err)
	}
	if err = util.WriteFile(filename, text); err != nil {
		return fmt.Errorf("WriteCSV -> %w", err)
	}
	return nil
}

// ExitCode is 1 when any result differs.
func ExitCode(outputs []model.DiffOutput) int {
	if Summarize(outputs).HasDiff() {
		return 1
	}
	return 0
}
