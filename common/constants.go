package common

// HccVersion is the current compiler version as a string.
const HccVersion string = "1.30.0"

// ProgVersion is the version number written into every progs image.  The host
// engine refuses to load an image whose version does not match.
const ProgVersion int32 = 6

// Default file names, all relative to the source directory.
const (
	DefaultSourceList   = "progs.src"
	DefaultProgdefsName = "progdefs.h"
	DefaultManifestName = "files.dat"
	ProjectFileName     = "hcc.toml"
)

// Names of the sentinel symbols closing the system globals and system fields
// sections of the struct mirror.
const (
	EndSysGlobals = "end_sys_globals"
	EndSysFields  = "end_sys_fields"
)

// LocalNamePlaceholder is the shared name given to collapsed descriptors when
// name table optimization is enabled.
const LocalNamePlaceholder = "LCL+"

// ConstantStringPrefix marks globals holding constant strings.  They are not
// flagged for saving unless legacy behavior is requested.
const ConstantStringPrefix = "STR_"
