// Package report writes enumeration results as text, JSON or YAML.
package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/satchel/internal/ui/output"
	"go.trai.ch/satchel/internal/ui/style"
	"gopkg.in/yaml.v3"
)

var _ ports.Reporter = (*Writer)(nil)

// Writer implements ports.Reporter on top of an io.Writer.
type Writer struct {
	w      io.Writer
	styled bool
}

// NewWriter creates a Writer. A nil writer selects stdout.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		w = os.Stdout
	}
	return &Writer{w: w}
}

// SetStyled toggles colors and bold headers in text reports.
func (r *Writer) SetStyled(enabled bool) {
	r.styled = enabled
}

// WriteReport writes the report in the given format.
func (r *Writer) WriteReport(report *domain.Report, format domain.Format) error {
	switch format {
	case domain.FormatJSON:
		return r.writeJSON(report)
	case domain.FormatYAML:
		return r.writeYAML(report)
	default:
		return r.writeText(report)
	}
}

// writeText prints the count, then one satchel per line. Styled output adds
// a footer with the round count and fingerprint.
func (r *Writer) writeText(report *domain.Report) error {
	bw := bufio.NewWriter(r.w)

	header := strconv.Itoa(report.Count())
	var out *termenv.Output
	if r.styled {
		out = output.NewWithProfile(bw, output.ColorProfileANSI)
		header = out.String(header).Bold().Foreground(termenv.RGBColor(string(style.Iris))).String()
	}
	_, _ = fmt.Fprintln(bw, header)

	for _, s := range report.Satchels {
		_, _ = fmt.Fprintln(bw, s.String())
	}

	if r.styled {
		footer := fmt.Sprintf("%s %d rounds %s fingerprint %s", style.Check, report.Rounds, style.Dot, report.Fingerprint)
		_, _ = fmt.Fprintln(bw, out.String(footer).Foreground(termenv.RGBColor(string(style.Slate))).String())
	}

	if err := bw.Flush(); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, err)
	}
	return nil
}

func (r *Writer) writeJSON(report *domain.Report) error {
	data, err := json.MarshalIndent(newDocument(report), "", "  ")
	if err != nil {
		return errors.Join(domain.ErrReportMarshalFailed, err)
	}
	data = append(data, '\n')

	if _, err := r.w.Write(data); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, err)
	}
	return nil
}

func (r *Writer) writeYAML(report *domain.Report) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)

	if err := enc.Encode(newDocument(report)); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, err)
	}
	return nil
}

// WriteMoves prints one line per exchange pair with its outcome.
func (r *Writer) WriteMoves(moves []domain.Move) error {
	bw := bufio.NewWriter(r.w)

	for _, m := range moves {
		result := "none"
		if m.OK {
			result = m.To.String()
		}
		_, _ = fmt.Fprintf(bw, "%s: %s\n", m.Pair, result)
	}

	if err := bw.Flush(); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, err)
	}
	return nil
}
