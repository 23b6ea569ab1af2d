package generate

import (
	"bufio"
	"fmt"
	"hcc/progs"
	"io"

	"github.com/pkg/errors"
)

// WriteManifest writes the precache manifest of u: for sounds, models and
// generic files in turn, the entry count on its own line followed by one
// `block path` line per entry in the order the entries were added.
func WriteManifest(w io.Writer, u *progs.Unit) error {
	bw := bufio.NewWriter(w)

	for _, list := range [][]progs.PrecacheEntry{u.Sounds(), u.Models(), u.Files()} {
		fmt.Fprintf(bw, "%d\n", len(list))
		for _, entry := range list {
			fmt.Fprintf(bw, "%d %s\n", entry.Block, entry.Path)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "error writing precache manifest")
	}

	return nil
}
