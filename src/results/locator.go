package results

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iafilius/CoevolutionPlot/src/logging"
	"github.com/iafilius/CoevolutionPlot/src/types"
)

// DataDirName is the directory holding the result files, looked up next to the executable first.
const DataDirName = "data"

// DefaultDataDir returns <dir of the running executable>/data. When that directory does not exist, as with
// binaries built by "go run", it falls back to ./data in the working directory.
func DefaultDataDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
		exe = resolved
	}
	return dataDirFor(filepath.Dir(exe))
}

func dataDirFor(exeDir string) (string, error) {
	dir := filepath.Join(exeDir, DataDirName)
	if st, err := os.Stat(dir); err == nil && st.IsDir() {
		return dir, nil
	}
	wd, err := filepath.Abs(DataDirName)
	if err != nil {
		return "", fmt.Errorf("locate data directory: %w", err)
	}
	logging.Debugf("[results] %s not found, using %s", dir, wd)
	return wd, nil
}

// Locator maps series file names onto paths inside one data directory.
type Locator struct {
	DataDir string
}

// NewLocator returns a Locator rooted at dir.
func NewLocator(dir string) *Locator {
	return &Locator{DataDir: dir}
}

// Path returns the on-disk path of a series file. Absolute file names are kept as is.
func (l *Locator) Path(s types.Series) string {
	if filepath.IsAbs(s.File) {
		return s.File
	}
	return filepath.Join(l.DataDir, s.File)
}

// Resolve returns the paths of all series in order. Every file must exist and be a regular file.
func (l *Locator) Resolve(series []types.Series) ([]string, error) {
	paths := make([]string, 0, len(series))
	for _, s := range series {
		p := l.Path(s)
		st, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("series %s: %w: %s", s.Label, ErrFileNotFound, p)
			}
			return nil, fmt.Errorf("series %s: stat %s: %w", s.Label, p, err)
		}
		if st.IsDir() {
			return nil, fmt.Errorf("series %s: %w: %s is a directory", s.Label, ErrFileNotFound, p)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
