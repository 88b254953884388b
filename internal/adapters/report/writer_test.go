package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/satchel/internal/adapters/report"
	"go.trai.ch/satchel/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func quarterReport() *domain.Report {
	satchels := []domain.Satchel{
		domain.NewSatchel(0, 0, 0, 1),
		domain.NewSatchel(5, 0, 2, 0),
		domain.NewSatchel(25, 0, 0, 0),
		domain.NewSatchel(20, 1, 0, 0),
		domain.NewSatchel(15, 2, 0, 0),
		domain.NewSatchel(15, 0, 1, 0),
		domain.NewSatchel(10, 3, 0, 0),
		domain.NewSatchel(10, 1, 1, 0),
		domain.NewSatchel(5, 4, 0, 0),
		domain.NewSatchel(5, 2, 1, 0),
		domain.NewSatchel(0, 5, 0, 0),
		domain.NewSatchel(0, 3, 1, 0),
		domain.NewSatchel(0, 1, 2, 0),
	}
	return &domain.Report{
		Amount:      25,
		Rounds:      6,
		Order:       domain.OrderDesc,
		Fingerprint: "a109e7654f3acd05",
		Satchels:    domain.Sort(satchels, domain.OrderDesc),
	}
}

func nickelReport() *domain.Report {
	return &domain.Report{
		Amount:      5,
		Rounds:      2,
		Order:       domain.OrderDesc,
		Fingerprint: "dc72cf68ae308688",
		Satchels: []domain.Satchel{
			domain.NewSatchel(5, 0, 0, 0),
			domain.NewSatchel(0, 1, 0, 0),
		},
	}
}

func TestWriteReport_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		report     *domain.Report
		format     domain.Format
		goldenName string
	}{
		{name: "text", report: quarterReport(), format: domain.FormatText, goldenName: "quarter_text"},
		{name: "json", report: nickelReport(), format: domain.FormatJSON, goldenName: "nickel_json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			require.NoError(t, report.NewWriter(buf).WriteReport(tt.report, tt.format))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestWriteReport_YAML(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, report.NewWriter(buf).WriteReport(nickelReport(), domain.FormatYAML))

	var doc report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, report.Document{
		Amount:      5,
		Count:       2,
		Rounds:      2,
		Order:       "desc",
		Fingerprint: "dc72cf68ae308688",
		Satchels: []report.SatchelDTO{
			{Pennies: 5},
			{Nickels: 1},
		},
	}, doc)
}

func TestWriteReport_Styled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	buf := &bytes.Buffer{}
	w := report.NewWriter(buf)
	w.SetStyled(true)
	require.NoError(t, w.WriteReport(nickelReport(), domain.FormatText))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "5p 0n 0d 0q\n0p 1n 0d 0q\n")
	assert.Contains(t, out, "2 rounds")
	assert.Contains(t, out, "dc72cf68ae308688")
}

func TestWriteReport_StyledNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	w := report.NewWriter(buf)
	w.SetStyled(true)
	require.NoError(t, w.WriteReport(nickelReport(), domain.FormatText))

	assert.Equal(t, "2\n5p 0n 0d 0q\n0p 1n 0d 0q\n✓ 2 rounds ● fingerprint dc72cf68ae308688\n", buf.String())
}

func TestWriteMoves_Golden(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	w := report.NewWriter(buf)
	require.NoError(t, w.WriteMoves(domain.Moves(domain.NewSatchel(100, 0, 0, 0))))
	require.NoError(t, w.WriteMoves(domain.Moves(domain.NewSatchel(50, 5, 2, 1))))

	g := goldie.New(t)
	g.Assert(t, "moves", buf.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReport_WriteFailure(t *testing.T) {
	t.Parallel()

	w := report.NewWriter(failingWriter{})
	for _, format := range []domain.Format{domain.FormatText, domain.FormatJSON, domain.FormatYAML} {
		err := w.WriteReport(nickelReport(), format)
		require.ErrorIs(t, err, domain.ErrReportWriteFailed, "format %s", format)
	}

	err := w.WriteMoves(domain.Moves(domain.NewSatchel(5, 0, 0, 0)))
	require.ErrorIs(t, err, domain.ErrReportWriteFailed)
}
