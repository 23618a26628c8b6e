package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/pathlib"
)

// Store is file-backed persistence for the catalog. Every operation
// reflects current on-disk state; there is no in-process cache.
type Store struct {
	root string
}

// Failure reports one record that could not be enumerated; it never
// aborts listing of the healthy records around it.
type Failure struct {
	Id  string
	Err error
}

func New(root string) (*Store, error) {
	for _, kind := range []string{KindExtension, KindProfile} {
		if _, err := pathlib.EnsureDirectory(filepath.Join(root, kind)); err != nil {
			return nil, &IoError{Op: "create " + kind + " directory", Err: err}
		}
	}
	return &Store{root: root}, nil
}

// Open binds a store to the product data directory.
func Open() (*Store, error) {
	return New(common.Product.Home())
}

func (it *Store) Root() string {
	return it.root
}

func (it *Store) entityPath(kind, id string) string {
	return filepath.Join(it.root, kind, id+".json")
}

// write serializes the full entity and promotes it atomically over any
// previous record, so an interrupted save never truncates valid content.
func (it *Store) write(kind, id string, entity interface{}) error {
	content, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return &IoError{Op: "serialize " + kind + "/" + id, Err: err}
	}
	final := it.entityPath(kind, id)
	partfile := final + ".part"
	if err := os.WriteFile(partfile, content, 0o644); err != nil {
		return &IoError{Op: "write " + partfile, Err: err}
	}
	if err := os.Rename(partfile, final); err != nil {
		os.Remove(partfile)
		return &IoError{Op: "promote " + final, Err: err}
	}
	common.Trace("stored %s/%s (%d bytes)", kind, id, len(content))
	return nil
}

func (it *Store) read(kind, id string) ([]byte, error) {
	content, err := os.ReadFile(it.entityPath(kind, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Kind: kind, Id: id}
		}
		return nil, &IoError{Op: "read " + kind + "/" + id, Err: err}
	}
	return content, nil
}

func (it *Store) remove(kind, id string) error {
	err := os.Remove(it.entityPath(kind, id))
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Kind: kind, Id: id}
		}
		return &IoError{Op: "delete " + kind + "/" + id, Err: err}
	}
	return nil
}

func (it *Store) SaveExtension(extension *Extension) error {
	extension.normalize()
	if len(extension.Id) == 0 {
		return fmt.Errorf("extension is missing an id")
	}
	return it.write(KindExtension, extension.Id, extension)
}

// SaveProfile refreshes updated_at on success and sets created_at exactly
// once. Timestamps are written back to the caller's value only after the
// record is durably in place.
func (it *Store) SaveProfile(profile *Profile) error {
	profile.normalize()
	if len(profile.Id) == 0 {
		return fmt.Errorf("profile is missing an id")
	}
	record := *profile
	now := time.Now().UTC()
	if record.Metadata.CreatedAt.IsZero() {
		record.Metadata.CreatedAt = now
	}
	record.Metadata.UpdatedAt = now
	if err := it.write(KindProfile, record.Id, &record); err != nil {
		return err
	}
	profile.Metadata = record.Metadata
	return nil
}

func (it *Store) LoadExtension(id string) (*Extension, error) {
	content, err := it.read(KindExtension, id)
	if err != nil {
		return nil, err
	}
	extension := new(Extension)
	if err := json.Unmarshal(content, extension); err != nil {
		return nil, &ParseError{Kind: KindExtension, Id: id, Err: err}
	}
	extension.normalize()
	if extension.Id != id {
		common.Trace("extension record %q carries id %q; filename stem wins", id, extension.Id)
		extension.Id = id
	}
	return extension, nil
}

// profileRecord is the raw stored shape. launch_config is optional on
// disk; the in-memory Profile always carries a fully populated value.
type profileAlias Profile

type profileRecord struct {
	profileAlias
	LaunchConfig *LaunchConfig `json:"launch_config"`
}

func decodeProfile(id string, content []byte) (*Profile, error) {
	record := new(profileRecord)
	if err := json.Unmarshal(content, record); err != nil {
		return nil, &ParseError{Kind: KindProfile, Id: id, Err: err}
	}
	profile := Profile(record.profileAlias)
	if record.LaunchConfig != nil {
		profile.LaunchConfig = *record.LaunchConfig
	} else {
		profile.LaunchConfig = DefaultLaunchConfig()
	}
	profile.normalize()
	if profile.Id != id {
		common.Trace("profile record %q carries id %q; filename stem wins", id, profile.Id)
		profile.Id = id
	}
	return &profile, nil
}

func (it *Store) LoadProfile(id string) (*Profile, error) {
	content, err := it.read(KindProfile, id)
	if err != nil {
		return nil, err
	}
	return decodeProfile(id, content)
}

func (it *Store) DeleteExtension(id string) error {
	return it.remove(KindExtension, id)
}

func (it *Store) DeleteProfile(id string) error {
	return it.remove(KindProfile, id)
}

// recordIds enumerates the filename stems of a kind, sorted for stable
// listing order.
func (it *Store) recordIds(kind string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(it.root, kind))
	if err != nil {
		return nil, &IoError{Op: "enumerate " + kind, Err: err}
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (it *Store) ListExtensions() ([]*Extension, []Failure, error) {
	ids, err := it.recordIds(KindExtension)
	if err != nil {
		return nil, nil, err
	}
	result := make([]*Extension, 0, len(ids))
	failures := []Failure{}
	for _, id := range ids {
		extension, err := it.LoadExtension(id)
		if err != nil {
			common.Debug("skipping extension %q: %v", id, err)
			failures = append(failures, Failure{Id: id, Err: err})
			continue
		}
		result = append(result, extension)
	}
	sortByName(result, func(e *Extension) string { return e.Name })
	return result, failures, nil
}

func (it *Store) ListProfiles() ([]*Profile, []Failure, error) {
	ids, err := it.recordIds(KindProfile)
	if err != nil {
		return nil, nil, err
	}
	result := make([]*Profile, 0, len(ids))
	failures := []Failure{}
	for _, id := range ids {
		profile, err := it.LoadProfile(id)
		if err != nil {
			common.Debug("skipping profile %q: %v", id, err)
			failures = append(failures, Failure{Id: id, Err: err})
			continue
		}
		result = append(result, profile)
	}
	sortByName(result, func(p *Profile) string { return p.Name })
	return result, failures, nil
}

// DefaultProfile returns the profile flagged is_default, or nil when none
// is flagged.
func (it *Store) DefaultProfile() (*Profile, error) {
	profiles, _, err := it.ListProfiles()
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		if profile.Metadata.IsDefault {
			return profile, nil
		}
	}
	return nil, nil
}

func sortByName[T any](items []T, name func(T) string) {
	sort.SliceStable(items, func(left, right int) bool {
		return strings.ToLower(name(items[left])) < strings.ToLower(name(items[right]))
	})
}
