package mailwalk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultDirName is the directory, next to the executable, that receives
// output files.
const DefaultDirName = "email_extracts"

const timestampLayout = "20060102_150405"

// Writer persists extracted emails as text files, one address per line.
type Writer struct {
	dir string
	now func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithDir sets the output directory. An empty dir is ignored.
func WithDir(dir string) WriterOption {
	return func(w *Writer) {
		if strings.TrimSpace(dir) != "" {
			w.dir = dir
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) WriterOption {
	return func(w *Writer) { w.now = now }
}

// NewWriter returns a Writer targeting DefaultDir unless WithDir is given.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		dir: DefaultDir(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DefaultDir returns DefaultDirName inside the running executable's
// directory, or inside the working directory when that cannot be resolved.
func DefaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultDirName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultDirName)
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// FileName returns the output file name for source at time t:
// emails_<base>_<YYYYMMDD_HHMMSS>.txt, where base is source's file name
// without its extension.
func FileName(source string, t time.Time) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("emails_%s_%s.txt", base, t.Format(timestampLayout))
}

// Persist writes emails, in order and each followed by a newline, to a new
// file in the output directory and returns its path. Failures are *OpError
// values of kind KindOutputWrite; no partial file is left behind.
func (w *Writer) Persist(emails []string, source string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", &OpError{Op: "writer.mkdir", Kind: KindOutputWrite, Path: w.dir, Err: err}
	}

	path := filepath.Join(w.dir, FileName(source, w.now()))

	tmp := path + ".tmp"
	if err := writeLines(tmp, emails); err != nil {
		_ = os.Remove(tmp)
		return "", &OpError{Op: "writer.write", Kind: KindOutputWrite, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &OpError{Op: "writer.rename", Kind: KindOutputWrite, Path: path, Err: err}
	}

	return path, nil
}

func writeLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			_ = f.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
