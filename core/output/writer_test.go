package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "menus")

	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	path, err := w.WriteDate("2024-05-20", []byte("{}\n"), ".json")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "2024-05-20.json") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteDateRejectsBadDate(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, date := range []string{"", "../etc/passwd", "2024-5-20"} {
		if _, err := w.WriteDate(date, nil, ".json"); err == nil {
			t.Errorf("WriteDate(%q): expected error", date)
		}
	}
}
