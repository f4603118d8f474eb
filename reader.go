package mailwalk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// TrimInput removes the line terminator left by a prompt and any double
// quotes wrapping the path. Nothing else is touched.
func TrimInput(raw string) string {
	return strings.Trim(strings.TrimRight(raw, "\r\n"), `"`)
}

// NormalizePath trims raw with TrimInput and cleans the result to the host
// filesystem's conventions. An empty input stays empty.
func NormalizePath(raw string) string {
	p := TrimInput(raw)
	if p == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(p))
}

type loadConfig struct {
	repair bool
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

// WithRepair retries a document that fails to parse after running it through
// jsonrepair. If the repaired text still does not parse, the original parse
// error is returned.
func WithRepair() LoadOption {
	return func(c *loadConfig) { c.repair = true }
}

// Load reads and decodes the JSON file at path. Failures are *OpError values
// of kind KindInputNotFound, KindAccessDenied or KindInvalidFormat.
func Load(path string, opts ...LoadOption) (any, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if path == "" {
		return nil, &OpError{Op: "load.stat", Kind: KindInputNotFound, Err: fs.ErrNotExist}
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, classifyReadError("load.stat", path, err)
	}
	if fi.IsDir() {
		return nil, &OpError{Op: "load.stat", Kind: KindInputNotFound, Path: path, Err: errors.New("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classifyReadError("load.read", path, err)
	}

	v, err := Decode(data)
	if err == nil {
		return v, nil
	}
	if cfg.repair {
		if fixed, rerr := jsonrepair.JSONRepair(string(data)); rerr == nil {
			if v, derr := Decode([]byte(fixed)); derr == nil {
				return v, nil
			}
		}
	}
	return nil, &OpError{Op: "load.decode", Kind: KindInvalidFormat, Path: path, Err: err}
}

// ExtractFile loads the JSON file at path and extracts emails from it with a
// walker configured by opts.
func ExtractFile(path string, load []LoadOption, opts ...Option) ([]string, error) {
	v, err := Load(path, load...)
	if err != nil {
		return []string{}, err
	}
	return Extract(v, opts...), nil
}

// classifyReadError maps a filesystem error to a kind. Anything that is not a
// missing file is reported as access denied, since the file exists but could
// not be read.
func classifyReadError(op, path string, err error) *OpError {
	kind := KindAccessDenied
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindInputNotFound
	}
	return &OpError{Op: op, Kind: kind, Path: path, Err: err}
}
