package config

// Options are the compile-time switches of a compilation unit.
type Options struct {
	// OptimizeImmediates lets the statement emitter fold constant operands.
	OptimizeImmediates bool `toml:"optimize-immediates"`

	// OptimizeNames collapses the names of locals and unsaved globals into a
	// single shared placeholder string.
	OptimizeNames bool `toml:"optimize-names"`

	// Legacy restores the old behavior of saving STR_ constant globals.
	Legacy bool `toml:"legacy"`

	// NoWarnings suppresses all warning output.
	NoWarnings bool `toml:"no-warnings"`

	// ShowUnrefFuncs reports functions that are never referenced.
	ShowUnrefFuncs bool `toml:"unreferenced-functions"`

	// FileInfo prints object sizes after each compiled file.
	FileInfo bool `toml:"file-info"`

	// Quiet suppresses per-file progress lines.
	Quiet bool `toml:"quiet"`
}

// Merge turns on every switch that is on in other.  Command line flags can only
// enable switches, so they are merged over the project file this way.
func (o *Options) Merge(other Options) {
	o.OptimizeImmediates = o.OptimizeImmediates || other.OptimizeImmediates
	o.OptimizeNames = o.OptimizeNames || other.OptimizeNames
	o.Legacy = o.Legacy || other.Legacy
	o.NoWarnings = o.NoWarnings || other.NoWarnings
	o.ShowUnrefFuncs = o.ShowUnrefFuncs || other.ShowUnrefFuncs
	o.FileInfo = o.FileInfo || other.FileInfo
	o.Quiet = o.Quiet || other.Quiet
}
