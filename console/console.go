// Package console writes the human readable progress lines of a run.
//
// Each line is rendered into a pooled buffer and handed to the writer in a
// single Write, so lines from concurrent workers never interleave.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Printer struct {
	mu sync.Mutex
	w  io.Writer
	// 汇总行的数字按千分位分组
	grouped *message.Printer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w, grouped: message.NewPrinter(language.English)}
}

// Stdout returns a Printer on the process standard output.
func Stdout() *Printer {
	return New(os.Stdout)
}

// Printf writes one line. A nil Printer discards it.
func (p *Printer) Printf(format string, args ...interface{}) {
	if p == nil {
		return
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, format, args...)
	p.flush(buf)
}

func (p *Printer) flush(buf *bytebufferpool.ByteBuffer) {
	if n := buf.Len(); n == 0 || buf.B[n-1] != '\n' {
		_ = buf.WriteByte('\n')
	}
	p.mu.Lock()
	_, _ = p.w.Write(buf.B)
	p.mu.Unlock()
}

func (p *Printer) Starting(id int) {
	p.Printf("I am thread %d, starting up now", id)
}

func (p *Printer) Finished(id int, count uint64) {
	p.Printf("I am thread %d; I changed the value %d times", id, count)
}

func (p *Printer) Terminating() {
	p.Printf("main(): setting sv to 2 and joining the threads")
}

func (p *Printer) AllFinished() {
	p.Printf("main(): all the threads have finished")
}

// Summary prints the coordinator's re-arm count next to the workers' total.
func (p *Printer) Summary(rearms, total uint64) {
	if p == nil {
		return
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	p.grouped.Fprintf(buf, "main(): I have set sv to 1 %d times, the threads reset it %d times.", rearms, total)
	p.flush(buf)
}
