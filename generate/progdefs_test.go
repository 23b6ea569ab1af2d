package generate

import (
	"fmt"
	"hcc/crc"
	"hcc/progs"
	"hcc/typing"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func systemUnit(t *testing.T) *progs.Unit {
	t.Helper()

	u := newUnit(t)
	types := u.Types()

	u.Declare("self", typing.Entity, progs.NoScope)
	u.Declare("time", typing.Float, progs.NoScope)
	u.Declare("v_forward", typing.Vector, progs.NoScope)
	u.Declare("mapname", typing.String, progs.NoScope)
	main, _ := u.Declare("main", types.Function(), progs.NoScope)
	u.DefineFunction(main, progs.Function{FirstStatement: -1})
	u.Declare(u.Sentinels.Globals, typing.Void, progs.NoScope)

	u.Declare("health", types.FieldOf(typing.Float), progs.NoScope)
	u.Declare("origin", types.FieldOf(typing.Vector), progs.NoScope)
	u.Declare("classname", types.FieldOf(typing.String), progs.NoScope)
	u.Declare(u.Sentinels.Fields, typing.Void, progs.NoScope)

	u.Declare("frags", types.FieldOf(typing.Float), progs.NoScope)

	closeUnit(t, u)
	return u
}

const wantProgdefs = "\n/* generated by hcc, do not modify */\n\n" +
	"typedef struct\n{\tint\tpad[28];\n" +
	"\tint\tself;\n" +
	"\tfloat\ttime;\n" +
	"\tvec3_t\tv_forward;\n" +
	"\tstring_t\tmapname;\n" +
	"\tfunc_t\tmain;\n" +
	"} globalvars_t;\n\n" +
	"typedef struct\n{\n" +
	"\tfloat\thealth;\n" +
	"\tvec3_t\torigin;\n" +
	"\tstring_t\tclassname;\n" +
	"} entvars_t;\n\n"

func TestProgdefs(t *testing.T) {
	u := systemUnit(t)

	got := Progdefs(u)
	if got != wantProgdefs {
		t.Errorf("Progdefs() =\n%s\nwant\n%s", got, wantProgdefs)
	}

	if got != Progdefs(u) {
		t.Error("Progdefs() is not deterministic")
	}

	if strings.Contains(got, "v_forward_x") || strings.Contains(got, "origin_x") {
		t.Error("vector components were emitted")
	}
}

func TestWriteProgdefs(t *testing.T) {
	u := systemUnit(t)

	path := filepath.Join(t.TempDir(), "progdefs.h")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	sum, err := WriteProgdefs(f, u)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if sum != crc.Bytes([]byte(wantProgdefs)) || sum != ProgdefsCRC(u) {
		t.Errorf("checksum = %d; want %d", sum, crc.Bytes([]byte(wantProgdefs)))
	}

	want := wantProgdefs + fmt.Sprintf("#define PROGHEADER_CRC %d\n", sum)
	if string(data) != want {
		t.Errorf("progdefs.h =\n%s\nwant\n%s", data, want)
	}

	// the image carries the same checksum
	_, image := writeImage(t, u, sum)
	img, err := ReadImage(image)
	if err != nil {
		t.Fatal(err)
	}

	if img.Header.CRC != int32(sum) {
		t.Errorf("image crc = %d; want %d", img.Header.CRC, sum)
	}
}
