package generate

import (
	"hcc/common"
	"hcc/config"
	"hcc/progs"
	"hcc/typing"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func newUnit(t *testing.T) *progs.Unit {
	t.Helper()

	u := progs.NewUnit(config.Options{}, config.DefaultLimits())
	if err := u.Open(); err != nil {
		t.Fatal(err)
	}

	return u
}

func closeUnit(t *testing.T, u *progs.Unit) {
	t.Helper()

	if ok, errs := u.Close(); !ok {
		t.Fatalf("Close() failed: %v", errs)
	}
}

// writeImage writes the image of u to a temporary file and returns its bytes.
func writeImage(t *testing.T, u *progs.Unit, crc uint16) (*Header, []byte) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "progs.dat")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	hdr, err := WriteImage(f, u, crc)
	f.Close()
	if err != nil {
		t.Fatalf("WriteImage() = %v", err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return hdr, data
}

func TestEmptyImage(t *testing.T) {
	u := newUnit(t)
	closeUnit(t, u)

	hdr, data := writeImage(t, u, 0x1234)

	img, err := ReadImage(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Header{
		Version:       common.ProgVersion,
		CRC:           0x1234,
		OfsStrings:    HeaderSize,
		NumStrings:    4,
		OfsStatements: HeaderSize + 4,
		NumStatements: 1,
		OfsFunctions:  HeaderSize + 4 + StatementSize,
		NumFunctions:  1,
		OfsGlobalDefs: HeaderSize + 4 + StatementSize + FunctionSize,
		NumGlobalDefs: 1,
		OfsFieldDefs:  HeaderSize + 4 + StatementSize + FunctionSize + DefSize,
		NumFieldDefs:  1,
		OfsGlobals:    HeaderSize + 4 + StatementSize + FunctionSize + 2*DefSize,
		NumGlobals:    progs.ReservedOfs,
	}

	if img.Header != want {
		t.Errorf("header = %s\nwant %s", spew.Sdump(img.Header), spew.Sdump(want))
	}

	if *hdr != img.Header {
		t.Error("returned header differs from the written one")
	}

	if int(hdr.Size()) != len(data) {
		t.Errorf("Size() = %d; file is %d bytes", hdr.Size(), len(data))
	}
}

func TestImageRoundTrip(t *testing.T) {
	u := newUnit(t)
	u.BeginFile("test.hc")

	id, _ := u.Declare("think", u.Types().Function(), progs.NoScope)
	u.DefineFunction(id, progs.Function{FirstStatement: 1, ParmStart: 40, NumParms: 2, ParmSize: [progs.MaxParms]byte{1, 3}})

	v, _ := u.Declare("v_forward", typing.Vector, progs.NoScope)
	u.SetGlobalFloat(u.Symbol(v).Ofs+2, 1.5)
	u.Declare("origin", u.Types().FieldOf(typing.Vector), progs.NoScope)

	u.AddStatement(progs.OpAddF, 28, 29, 30, 3)
	u.AddStatement(progs.OpGoto, -1, 0, 0, 4)
	u.AddStatement(progs.OpDone, 0, 0, 0, 5)

	closeUnit(t, u)

	_, data := writeImage(t, u, 99)
	img, err := ReadImage(data)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(img.Statements, u.Statements()) {
		t.Errorf("statements = %s", spew.Sdump(img.Statements))
	}
	if !reflect.DeepEqual(img.Functions, u.Functions()) {
		t.Errorf("functions = %s", spew.Sdump(img.Functions))
	}
	if !reflect.DeepEqual(img.GlobalDefs, u.GlobalDefs()) {
		t.Errorf("global defs = %s", spew.Sdump(img.GlobalDefs))
	}
	if !reflect.DeepEqual(img.FieldDefs, u.FieldDefs()) {
		t.Errorf("field defs = %s", spew.Sdump(img.FieldDefs))
	}
	if !reflect.DeepEqual(img.Globals, u.Globals()) {
		t.Errorf("globals = %v", img.Globals)
	}

	if name := img.String(img.Functions[1].SName); name != "think" {
		t.Errorf("function name = %q; want think", name)
	}
	if file := img.String(img.Functions[1].SFile); file != "test.hc" {
		t.Errorf("function file = %q; want test.hc", file)
	}

	if img.Header.EntityFields != 3 {
		t.Errorf("entity fields = %d; want 3", img.Header.EntityFields)
	}
	if img.Header.NumStrings%4 != 0 {
		t.Errorf("string heap size %d not aligned", img.Header.NumStrings)
	}
}

func TestImageRequiresClosedUnit(t *testing.T) {
	u := newUnit(t)

	f, err := os.Create(filepath.Join(t.TempDir(), "progs.dat"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := WriteImage(f, u, 0); err == nil {
		t.Error("WriteImage() accepted an open unit")
	}
}

func TestReadImageTruncated(t *testing.T) {
	u := newUnit(t)
	closeUnit(t, u)

	_, data := writeImage(t, u, 0)
	if _, err := ReadImage(data[:len(data)-4]); err == nil {
		t.Error("ReadImage() accepted a truncated image")
	}
}
