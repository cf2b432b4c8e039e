package objectfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/a32asm/internal/objectfile"
)

func TestWriteMemFileByteOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.memory")
	if err := objectfile.WriteMemFile(path, []uint32{0x12345678}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "78\n56\n34\n12\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", string(got), want)
	}
}

func TestWriteMemFileMultipleWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.memory")
	if err := objectfile.WriteMemFile(path, []uint32{0x000000FF, 0x00000001}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "ff\n00\n00\n00\n01\n00\n00\n00\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", string(got), want)
	}
}
