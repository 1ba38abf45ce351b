package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printTwo(t *testing.T, p *Printer) {
	t.Helper()
	require.NoError(t, p.PrintFile("src/a.py", []byte("print(\"a\")\n")))
	require.NoError(t, p.PrintFile("src/b.txt", []byte("line one\nline two")))
	require.NoError(t, p.Finalize())
}

func TestPrintFilePlain(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New().WithOutput(buf)
	printTwo(t, p)

	g := goldie.New(t)
	g.Assert(t, "plain_two_files", buf.Bytes())
	assert.Equal(t, 2, p.GetCount())
}

func TestPrintFileXML(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New().WithOutput(buf).WithFormat(FormatXML)
	printTwo(t, p)

	g := goldie.New(t)
	g.Assert(t, "xml_two_files", buf.Bytes())
}

func TestXMLWithoutFiles(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New().WithOutput(buf).WithFormat(FormatXML)
	require.NoError(t, p.Begin())
	require.NoError(t, p.Finalize())
	require.NoError(t, p.Finalize())

	g := goldie.New(t)
	g.Assert(t, "xml_empty", buf.Bytes())
}

func TestXMLIndexIsPerPrinter(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	p1 := New().WithOutput(first).WithFormat(FormatXML)
	p2 := New().WithOutput(second).WithFormat(FormatXML)

	require.NoError(t, p1.PrintFile("a", []byte("1")))
	require.NoError(t, p1.PrintFile("b", []byte("2")))
	require.NoError(t, p2.PrintFile("c", []byte("3")))

	assert.Contains(t, first.String(), `<document index="2">`)
	assert.Contains(t, second.String(), `<document index="1">`)
	assert.NotContains(t, second.String(), `<document index="3">`)
}

func TestPlainWithColors(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New().WithOutput(buf).WithColors(true)
	require.NoError(t, p.PrintFile("main.go", []byte("package main")))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "\n---\npackage main\n\n---\n")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatPlain},
		{"plain", FormatPlain},
		{"XML", FormatXML},
		{" cxml ", FormatXML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("yaml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteErrorsAreReturned(t *testing.T) {
	p := New().WithOutput(failingWriter{}).WithFormat(FormatXML)
	assert.Error(t, p.PrintFile("a", []byte("x")))
}
