// internal/cmdutil/progress.go
package cmdutil

import (
	"io"
	"os"

	"gopkg.in/cheggaaa/pb.v1"
)

// Progress counts finished jobs. The zero value and nil are no-ops.
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress draws a bar on dst for total jobs, but only when dst is a
// terminal, there is more than one job, and quiet is off.
func StartProgress(dst io.Writer, quiet bool, total int) *Progress {
	if quiet || total < 2 || !isTerminal(dst) {
		return &Progress{}
	}
	bar := pb.New(total)
	bar.Output = dst
	bar.ShowSpeed = false
	bar.SetMaxWidth(80)
	bar.Start()
	return &Progress{bar: bar}
}

func (p *Progress) Increment() {
	if p != nil && p.bar != nil {
		p.bar.Increment()
	}
}

func (p *Progress) Finish() {
	if p != nil && p.bar != nil {
		p.bar.Finish()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
