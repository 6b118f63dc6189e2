package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/ivedit/internal/model"
)

// TargetFor derives the compiler's input file and output target from the
// chosen save path. Every trailing suffix is stripped to get the base name,
// then the suffix is reapplied once for the input file:
//
//	foo.iv -> foo.iv, foo
//	foo    -> foo.iv, foo
func TargetFor(path m.Path, suffix string) (m.Target, error) {
	save := string(path)

	if suffix != "" {
		for strings.HasSuffix(save, suffix) {
			save = strings.TrimSuffix(save, suffix)
		}
	}

	if save == "" || os.IsPathSeparator(save[len(save)-1]) {
		return m.Target{}, errors.New("output path has no file name")
	}

	return m.Target{
		Input:  m.Path(save + suffix),
		Output: m.Path(save),
		Dir:    m.Path(filepath.Dir(save)),
	}, nil
}
