package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/castqc/internal/domain"
)

// listsFile mirrors the on-disk document. Pointer fields tell a missing key
// apart from an empty array.
type listsFile struct {
	CastingNames *[]string `json:"casting_names"`
	Executors    *[]string `json:"executors"`
	Controllers  *[]string `json:"controllers"`
}

// JSONPickListRepo stores the pick lists in one JSON file. Saves replace the
// file atomically: the document is written to a temp file in the same
// directory, synced, then renamed over the target.
type JSONPickListRepo struct {
	path string
}

// NewJSONPickListRepo creates a repo backed by the file at path.
func NewJSONPickListRepo(path string) *JSONPickListRepo {
	return &JSONPickListRepo{path: path}
}

// Path returns the backing file location.
func (r *JSONPickListRepo) Path() string {
	return r.path
}

// Load reads the lists. A missing file yields domain.DefaultLists and no
// error; a missing key falls back to that list's default. Entries are
// normalized like any added value, so a hand-edited file loads in canonical
// form. An unreadable or undecodable file yields the defaults together with
// an error wrapping ErrCorruptLists.
func (r *JSONPickListRepo) Load(ctx context.Context) (domain.Lists, error) {
	defaults := domain.DefaultLists()
	if err := ctx.Err(); err != nil {
		return defaults, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("reading pick lists: %w", err)
	}

	var f listsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return defaults, fmt.Errorf("%w: %s: %v", ErrCorruptLists, r.path, err)
	}

	lists := defaults
	if f.CastingNames != nil {
		lists.CastingNames = domain.NewPickList(*f.CastingNames...)
	}
	if f.Executors != nil {
		lists.Executors = domain.NewPickList(*f.Executors...)
	}
	if f.Controllers != nil {
		lists.Controllers = domain.NewPickList(*f.Controllers...)
	}
	return lists, nil
}

// Save rewrites the whole document.
func (r *JSONPickListRepo) Save(ctx context.Context, lists domain.Lists) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := listsFile{
		CastingNames: toStrings(lists.CastingNames),
		Executors:    toStrings(lists.Executors),
		Controllers:  toStrings(lists.Controllers),
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding pick lists: %w", err)
	}

	if err := writeFileAtomic(r.path, buf.Bytes()); err != nil {
		return fmt.Errorf("saving pick lists: %w", err)
	}
	return nil
}

func toStrings(l domain.PickList) *[]string {
	s := []string(l.WithSentinel())
	return &s
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	committed = true
	return nil
}
