package config

import (
	"hcc/common"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Project is the configuration of a progs project: the contents of the
// optional project file in the source directory merged with defaults.
type Project struct {
	// Dir is the source directory.  All other paths are relative to it.
	Dir string

	Options   Options
	Limits    Limits
	Sentinels Sentinels
	Output    Output
}

// Sentinels names the symbols closing the system sections of the struct mirror.
type Sentinels struct {
	Globals string `toml:"globals"`
	Fields  string `toml:"fields"`
}

// Output names the secondary artifacts of a compilation.
type Output struct {
	Progdefs string `toml:"progdefs"`
	Manifest string `toml:"manifest"`
}

// tomlProjectFile represents the project file as it is encoded in TOML
type tomlProjectFile struct {
	Options   *Options   `toml:"options"`
	Limits    *Limits    `toml:"limits"`
	Sentinels *Sentinels `toml:"sentinels"`
	Output    *Output    `toml:"output"`
}

// DefaultProject returns the configuration used when no project file exists.
func DefaultProject(dir string) *Project {
	return &Project{
		Dir:    dir,
		Limits: DefaultLimits(),
		Sentinels: Sentinels{
			Globals: common.EndSysGlobals,
			Fields:  common.EndSysFields,
		},
		Output: Output{
			Progdefs: common.DefaultProgdefsName,
			Manifest: common.DefaultManifestName,
		},
	}
}

// Load loads the project file from dir.  A missing project file is not an
// error: the defaults are returned.  Keys present in the file replace the
// defaults; absent keys keep their default values.
func Load(dir string) (*Project, error) {
	proj := DefaultProject(dir)

	buff, err := ioutil.ReadFile(filepath.Join(dir, common.ProjectFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return proj, nil
		}

		return nil, errors.Wrap(err, "error reading project file")
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, errors.Wrapf(err, "error decoding %s", common.ProjectFileName)
	}
	proj.apply(tpf)

	if err := proj.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", common.ProjectFileName)
	}

	return proj, nil
}

// apply overlays the values present in a decoded project file on the project.
// Keys absent from the file decode to zero values and keep their defaults.
func (p *Project) apply(tpf *tomlProjectFile) {
	if tpf.Options != nil {
		p.Options.Merge(*tpf.Options)
	}

	if tpf.Limits != nil {
		p.Limits.overlay(*tpf.Limits)
	}

	if tpf.Sentinels != nil {
		overlayString(&p.Sentinels.Globals, tpf.Sentinels.Globals)
		overlayString(&p.Sentinels.Fields, tpf.Sentinels.Fields)
	}

	if tpf.Output != nil {
		overlayString(&p.Output.Progdefs, tpf.Output.Progdefs)
		overlayString(&p.Output.Manifest, tpf.Output.Manifest)
	}
}

func overlayString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Validate checks the project configuration for consistency.
func (p *Project) Validate() error {
	if p.Sentinels.Globals == "" || p.Sentinels.Fields == "" {
		return errors.New("sentinel names may not be empty")
	}

	if p.Output.Progdefs == "" || p.Output.Manifest == "" {
		return errors.New("output names may not be empty")
	}

	return p.Limits.Validate()
}

// Path returns name resolved against the source directory.
func (p *Project) Path(name string) string {
	return filepath.Join(p.Dir, name)
}

// Init writes a project file holding the default configuration into dir.  It
// fails if a project file already exists.
func Init(dir string) error {
	projFilePath := filepath.Join(dir, common.ProjectFileName)

	_, err := os.Stat(projFilePath)
	if err == nil {
		return errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return errors.Wrap(err, "project file error")
	}

	proj := DefaultProject(dir)

	f, err := os.Create(projFilePath)
	if err != nil {
		return errors.Wrap(err, "error creating project file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlProjectFile{
		Options:   &proj.Options,
		Limits:    &proj.Limits,
		Sentinels: &proj.Sentinels,
		Output:    &proj.Output,
	}); err != nil {
		return errors.Wrap(err, "error encoding TOML")
	}

	return nil
}
