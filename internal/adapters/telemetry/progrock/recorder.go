// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/nbreq/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

var _ ports.Telemetry = (*Recorder)(nil)

// New creates a new Recorder with a default tape.
func New() *Recorder {
	tape := progrock.NewTape()
	return NewRecorder(tape)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// Record starts recording a new vertex. The returned context carries the
// vertex so that command runners can stream output into it.
//
// A workflow may run the same step more than once, so every vertex gets its
// own digest.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	n := r.seq.Add(1)
	d := digest.FromString(strconv.FormatUint(n, 10) + "/" + name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
