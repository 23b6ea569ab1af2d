package progs

import "github.com/pkg/errors"

// PrecacheEntry is an asset referenced by compiled code.  Block is the
// download block the asset belongs to.
type PrecacheEntry struct {
	Path  string
	Block int
}

// Enumeration of precache categories
const (
	PrecacheSound = iota
	PrecacheModel
	PrecacheFile
)

var precacheNames = [...]string{"precache_sound", "precache_model", "precache_file"}

// AddSound records a sound asset.
func (u *Unit) AddSound(path string, block int) error {
	return u.addPrecache(PrecacheSound, path, block)
}

// AddModel records a model asset.
func (u *Unit) AddModel(path string, block int) error {
	return u.addPrecache(PrecacheModel, path, block)
}

// AddFile records a generic file asset.
func (u *Unit) AddFile(path string, block int) error {
	return u.addPrecache(PrecacheFile, path, block)
}

func (u *Unit) addPrecache(kind int, path string, block int) error {
	if err := u.expect("precache", StateOpen); err != nil {
		return err
	}

	// paths are stored in fixed-size buffers with room for the terminator
	if len(path) >= u.limits.DataPath {
		return errors.Errorf("%s: path `%s` is longer than %d characters", precacheNames[kind], path, u.limits.DataPath-1)
	}

	list, limit := u.precacheList(kind)
	if err := checkCapacity(precacheNames[kind], len(*list), 1, limit); err != nil {
		return err
	}

	*list = append(*list, PrecacheEntry{Path: path, Block: block})
	return nil
}

func (u *Unit) precacheList(kind int) (*[]PrecacheEntry, int) {
	switch kind {
	case PrecacheSound:
		return &u.sounds, u.limits.Sounds
	case PrecacheModel:
		return &u.models, u.limits.Models
	default:
		return &u.files, u.limits.Files
	}
}

// Sounds returns the precached sounds in the order they were added.
func (u *Unit) Sounds() []PrecacheEntry {
	return u.sounds
}

// Models returns the precached models in the order they were added.
func (u *Unit) Models() []PrecacheEntry {
	return u.models
}

// Files returns the precached generic files in the order they were added.
func (u *Unit) Files() []PrecacheEntry {
	return u.files
}
