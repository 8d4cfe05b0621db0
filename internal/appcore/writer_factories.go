package appcore

import (
	"io"

	"alnedit/internal/engine"
	"alnedit/internal/pretty"
	"alnedit/internal/runutil"
	"alnedit/internal/writers"
)

// WriterFactory starts the result sink and tells the engine what it needs.
type WriterFactory interface {
	NeedRows() bool
	Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error)
}

// ResultWriterFactory writes text, JSON or JSONL results.
type ResultWriterFactory struct {
	Format string
	Header bool
	Pretty bool
	Render pretty.Options
}

func NewResultWriterFactory(format string, header, prettyMode bool, popt pretty.Options) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Header: header, Pretty: prettyMode, Render: popt}
}

func (w ResultWriterFactory) NeedRows() bool {
	return runutil.ComputeNeedRows(w.Format, w.Pretty)
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Header, w.Pretty, w.Render, bufSize)
}
