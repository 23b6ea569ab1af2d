package config

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
)

// Manifest is a parsed source list: the destination image followed by the
// source files to compile, in order.
type Manifest struct {
	Dest    string
	Sources []string
}

// LoadManifest reads and parses the source list at path.
func LoadManifest(path string) (*Manifest, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load %s", path)
	}

	return ParseManifest(string(buff))
}

// ParseManifest parses the text of a source list.  Entries are separated by
// whitespace and `//` starts a comment running to the end of the line.  The
// first entry is the destination file name.
func ParseManifest(text string) (*Manifest, error) {
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		if ndx := strings.Index(line, "//"); ndx >= 0 {
			line = line[:ndx]
		}

		tokens = append(tokens, strings.Fields(line)...)
	}

	if len(tokens) == 0 {
		return nil, errors.New("no destination filename")
	}

	return &Manifest{Dest: tokens[0], Sources: tokens[1:]}, nil
}
