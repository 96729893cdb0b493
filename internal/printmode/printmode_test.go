package printmode

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careaid/internal/content"
	"github.com/abhisek/careaid/internal/doc"
)

var testNow = time.Date(2025, 12, 11, 14, 30, 0, 0, time.UTC)

func testDoc(t *testing.T) *doc.Document {
	t.Helper()
	d, err := doc.Build(&content.Pack{
		Title: "Aid",
		Steps: []content.Step{
			{Title: "Learn", Kind: content.KindInfo, Body: "Learn things."},
			{Title: "Summary", Kind: content.KindSummary, Body: "Your summary."},
		},
	})
	require.NoError(t, err)
	return d
}

func testHeader() Header {
	return Header{Title: "Aid", Developer: "Dev Team", LastUpdated: "12/11/2025"}
}

func render(t *testing.T, d *doc.Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	return buf.String()
}

func TestEnterExit(t *testing.T) {
	d := testDoc(t)
	before := render(t, d)

	scope, err := Enter(d, KindSummary, testHeader(), testNow)
	require.NoError(t, err)

	assert.True(t, doc.HasClass(d.Body(), ClassSummaryMode))
	assert.False(t, doc.HasClass(d.Body(), ClassFullMode))

	sec, err := d.Section(2)
	require.NoError(t, err)
	first := sec.FirstChild
	require.NotNil(t, first)
	id, _ := doc.Attr(first, "id")
	assert.Equal(t, HeaderID, id)
	text := doc.TextContent(first)
	assert.Contains(t, text, "Developed by: Dev Team")
	assert.Contains(t, text, "Date Printed: 12/11/2025 2:30:00 PM")

	scope.Exit()
	assert.Equal(t, before, render(t, d))

	scope.Exit()
	assert.Equal(t, before, render(t, d))
}

func TestEnter_SwitchesModeAndKeepsSingleHeader(t *testing.T) {
	d := testDoc(t)

	s1, err := Enter(d, KindSummary, testHeader(), testNow)
	require.NoError(t, err)
	s2, err := Enter(d, KindFull, testHeader(), testNow)
	require.NoError(t, err)

	assert.True(t, doc.HasClass(d.Body(), ClassFullMode))
	assert.False(t, doc.HasClass(d.Body(), ClassSummaryMode))
	assert.Equal(t, 1, strings.Count(render(t, d), HeaderID))

	s2.Exit()
	s1.Exit()
	assert.NotContains(t, render(t, d), HeaderID)
}

func TestExit_KeepsHeaderItDidNotInject(t *testing.T) {
	d := testDoc(t)

	outer, err := Enter(d, KindSummary, testHeader(), testNow)
	require.NoError(t, err)
	inner, err := Enter(d, KindFull, testHeader(), testNow)
	require.NoError(t, err)

	inner.Exit()
	assert.NotNil(t, doc.ByID(d.Root(), HeaderID))

	outer.Exit()
	assert.Nil(t, doc.ByID(d.Root(), HeaderID))
}

type fakePrinter struct {
	seen string
	err  error
}

func (p *fakePrinter) Print(_ context.Context, d *doc.Document, _ Kind) (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	p.seen = buf.String()
	return "out.html", p.err
}

func TestRun_ExitsOnEveryOutcome(t *testing.T) {
	tests := []struct {
		name     string
		printErr error
		cancel   bool
		wantErr  bool
	}{
		{"success", nil, false, false},
		{"printer failure", errors.New("printer jammed"), false, true},
		{"cancelled", nil, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDoc(t)
			before := render(t, d)
			p := &fakePrinter{err: tt.printErr}

			ctx, cancel := context.WithCancel(context.Background())
			if tt.cancel {
				cancel()
			}
			defer cancel()

			out, err := Run(ctx, d, KindFull, testHeader(), p, testNow)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "out.html", out)
				assert.Contains(t, p.seen, ClassFullMode)
				assert.Contains(t, p.seen, HeaderID)
			}
			assert.Equal(t, before, render(t, d))
		})
	}
}

func TestFilePrinter(t *testing.T) {
	d := testDoc(t)
	dir := filepath.Join(t.TempDir(), "prints")
	p := FilePrinter{Dir: dir, Now: func() time.Time { return testNow }}

	path, err := Run(context.Background(), d, KindSummary, testHeader(), p, testNow)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "careaid-summary-20251211-143000.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ClassSummaryMode)
	assert.Contains(t, string(data), "Developed by:")
	assert.NotContains(t, render(t, d), ClassSummaryMode)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("full")
	require.NoError(t, err)
	assert.Equal(t, KindFull, k)

	_, err = ParseKind("poster")
	assert.Error(t, err)
}
