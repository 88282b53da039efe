package wordsource

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	contents := "# comment line\n\nCAT\n  DOG  \nFOO;80\n   \n#skip me\nBAR;\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	want := []string{"CAT", "DOG", "FOO", "BAR"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromFile() = %v, want %v", got, want)
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("FromFile(missing) should return an error")
	}
}

func TestFromSlice_IsDefensiveCopy(t *testing.T) {
	in := []string{"CAT", "DOG"}
	out := FromSlice(in)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("FromSlice() = %v, want %v", out, in)
	}
	out[0] = "MUTATED"
	if in[0] == "MUTATED" {
		t.Error("FromSlice() should not alias the input slice")
	}
}
