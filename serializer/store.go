package serializer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/tidy"
	log "github.com/sirupsen/logrus"
)

// SnapshotExtension is the file extension of snapshots written by a Store
const SnapshotExtension = ".tidy"

// Store keeps named Table snapshots in a directory. Saves and loads of the same
// name are serialized, while different names proceed concurrently.
type Store struct {
	dir        string
	serializer TableSerializer
	locks      *locker.Locker
}

// NewStore creates a Store writing snapshots into dir, creating it if necessary
func NewStore(dir string, serializer TableSerializer) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, serializer: serializer, locks: locker.New()}, nil
}

// Path returns the file in which the named snapshot is stored
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+SnapshotExtension)
}

// Save writes a snapshot of t under the given name, replacing any previous snapshot atomically
func (s *Store) Save(name string, t tidy.Table) (err error) {
	s.locks.Lock(name)
	defer s.locks.Unlock(name)
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if err = s.serializer.Serialize(tmp, t); err != nil {
		tmp.Close()
		return fmt.Errorf("Unable to write snapshot %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return err
	}
	log.WithFields(log.Fields{"snapshot": name, "rows": t.NumRows()}).Debug("saved table snapshot")
	return nil
}

// Load restores the named snapshot
func (s *Store) Load(name string) (tidy.Table, error) {
	s.locks.Lock(name)
	defer s.locks.Unlock(name)
	return LoadFile(s.Path(name), s.serializer)
}

// LoadFile restores a snapshot from a file
func LoadFile(path string, serializer TableSerializer) (tidy.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := serializer.Deserialize(f)
	if err != nil {
		return nil, fmt.Errorf("Unable to read snapshot %s: %w", path, err)
	}
	return t, nil
}
