package sandboxie

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/system"
)

// ErrConfigNotFound reports that the Sandboxie.ini path does not exist.
// Callers decide whether that is fatal.
var ErrConfigNotFound = errors.New("sandbox configuration file not found")

// Adapter reads and edits Sandboxie.ini sections on disk.
type Adapter struct {
	fs system.FileSystem
}

// NewAdapter returns an Adapter over fsys. A nil fsys uses the OS.
func NewAdapter(fsys system.FileSystem) *Adapter {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	return &Adapter{fs: fsys}
}

// Load reads and parses the file at path.
func (a *Adapter) Load(path string) (*Document, error) {
	if path == "" {
		return nil, ErrConfigNotFound
	}
	data, err := a.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// save writes doc back to path, keeping the file's permission bits.
func (a *Adapter) save(path string, doc *Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return err
	}

	perm := fs.FileMode(0644)
	if info, err := a.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := a.fs.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SectionExists reports whether [name] is present in the file.
func (a *Adapter) SectionExists(path, name string) (bool, error) {
	doc, err := a.Load(path)
	if err != nil {
		return false, err
	}
	return doc.HasSection(name), nil
}

// Sections lists every section name in file order.
func (a *Adapter) Sections(path string) ([]string, error) {
	doc, err := a.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.SectionNames(), nil
}

// AddSection appends [name] with props. It is a no-op, returning false,
// when the section already exists.
func (a *Adapter) AddSection(path, name string, props []Property) (bool, error) {
	doc, err := a.Load(path)
	if err != nil {
		return false, err
	}
	if !doc.AppendSection(name, props) {
		logging.Debug("section already present", "path", path, "section", name)
		return false, nil
	}
	if err := a.save(path, doc); err != nil {
		return false, err
	}
	logging.Debug("section added", "path", path, "section", name, "encoding", doc.Encoding.String())
	return true, nil
}

// RemoveSection drops every [name] section. The file is left untouched,
// and false returned, when nothing matched.
func (a *Adapter) RemoveSection(path, name string) (bool, error) {
	doc, err := a.Load(path)
	if err != nil {
		return false, err
	}
	n := doc.RemoveSection(name)
	if n == 0 {
		logging.Debug("section not present", "path", path, "section", name)
		return false, nil
	}
	if err := a.save(path, doc); err != nil {
		return false, err
	}
	logging.Debug("section removed", "path", path, "section", name, "count", n)
	return true, nil
}
