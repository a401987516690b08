// Package store keeps the canonical schedule file and its numbered backups
// on the filesystem the player host reads from. Backups are named
// schedule.json.~N~ with higher N meaning more recent, the canonical file
// always being newest.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
)

const canonicalName = "schedule.json"

// ordinal assigned to the canonical file so it sorts newest
const canonicalOrdinal = 1000000

var backupPattern = regexp.MustCompile(`^schedule\.json\.~([1-9][0-9]*)~$`)

var ErrVersionUnavailable = errors.New("version unavailable")

// FileStore reads and writes schedule versions under one directory.
type FileStore struct {
	dir  string
	keep int // backups retained after a save; 0 disables pruning
}

func NewFileStore(dir string, keep int) *FileStore {
	return &FileStore{dir: dir, keep: keep}
}

// ReadCurrent returns the canonical schedule document, or an empty JSON
// object when the file is absent or unreadable, as the editor expects.
func (fs *FileStore) ReadCurrent() []byte {
	raw, err := os.ReadFile(filepath.Join(fs.dir, canonicalName))
	if err != nil {
		log.Warn().Err(err).Msg("no readable current schedule")
		return []byte("{}")
	}
	return raw
}

// ReadVersion returns the named version, which must be the canonical file
// or one of its numbered backups.
func (fs *FileStore) ReadVersion(name string) ([]byte, error) {
	if name != canonicalName && !backupPattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrVersionUnavailable, name)
	}
	raw, err := os.ReadFile(filepath.Join(fs.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrVersionUnavailable, name)
	}
	return raw, nil
}

// ListVersions enumerates the known schedule versions, newest first. Files
// not matching the canonical or backup naming are excluded.
func (fs *FileStore) ListVersions() ([]string, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		log.Error().Err(err).Str("dir", fs.dir).Msg("cannot list schedule versions")
		return nil, err
	}
	type vers struct {
		ordinal int
		name    string
	}
	var found []vers
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ord, ok := ordinalOf(e.Name()); ok {
			found = append(found, vers{ord, e.Name()})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ordinal > found[j].ordinal })
	names := make([]string, 0, len(found))
	for _, v := range found {
		names = append(names, v.name)
	}
	return names, nil
}

func ordinalOf(name string) (int, bool) {
	if name == canonicalName {
		return canonicalOrdinal, true
	}
	m := backupPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n >= canonicalOrdinal {
		return 0, false
	}
	return n, true
}

// Save installs raw as the new canonical schedule. Any existing canonical
// file is first rotated to the next backup ordinal, and backups beyond the
// retention cap are pruned oldest-first.
func (fs *FileStore) Save(raw []byte) error {
	canonical := filepath.Join(fs.dir, canonicalName)
	if _, err := os.Stat(canonical); err == nil {
		next := fs.maxBackupOrdinal() + 1
		backup := filepath.Join(fs.dir, fmt.Sprintf("%s.~%d~", canonicalName, next))
		if err := os.Rename(canonical, backup); err != nil {
			log.Error().Err(err).Msg("backup rotation failed")
			return fmt.Errorf("rotating schedule backup: %w", err)
		}
	}
	if err := os.WriteFile(canonical, raw, 0o644); err != nil {
		log.Error().Err(err).Msg("writing schedule failed")
		return fmt.Errorf("writing schedule: %w", err)
	}
	fs.prune()
	return nil
}

func (fs *FileStore) maxBackupOrdinal() int {
	names, err := fs.ListVersions()
	if err != nil {
		return 0
	}
	max := 0
	for _, n := range names {
		if ord, ok := ordinalOf(n); ok && ord != canonicalOrdinal && ord > max {
			max = ord
		}
	}
	return max
}

func (fs *FileStore) prune() {
	if fs.keep <= 0 {
		return
	}
	names, err := fs.ListVersions()
	if err != nil {
		return
	}
	var backups []string // newest first, canonical excluded
	for _, n := range names {
		if n != canonicalName {
			backups = append(backups, n)
		}
	}
	for _, n := range backups[min(fs.keep, len(backups)):] {
		if err := os.Remove(filepath.Join(fs.dir, n)); err != nil {
			log.Warn().Err(err).Str("backup", n).Msg("could not prune backup")
		}
	}
}
