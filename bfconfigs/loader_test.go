package bfconfigs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigFiles(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir1, ".bf.cue"), []byte("tape_size: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir2, "bf.cue"), []byte("tape_size: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir2, ".bf.cue"), 0755); err != nil {
		t.Fatal(err)
	}

	paths := findConfigFiles([]string{dir1, dir2})
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
	if paths[0] != filepath.Join(dir1, ".bf.cue") {
		t.Fatalf("got %v", paths[0])
	}
	if paths[1] != filepath.Join(dir2, "bf.cue") {
		t.Fatalf("got %v", paths[1])
	}
}
