package generate

import (
	"bytes"
	"testing"
)

func TestWriteManifest(t *testing.T) {
	u := newUnit(t)

	u.AddSound("weapons/ax1.wav", 1)
	u.AddSound("misc/null.wav", 0)
	u.AddModel("models/player.mdl", 2)

	closeUnit(t, u)

	buf := &bytes.Buffer{}
	if err := WriteManifest(buf, u); err != nil {
		t.Fatal(err)
	}

	want := "2\n1 weapons/ax1.wav\n0 misc/null.wav\n1\n2 models/player.mdl\n0\n"
	if buf.String() != want {
		t.Errorf("manifest = %q; want %q", buf.String(), want)
	}
}
