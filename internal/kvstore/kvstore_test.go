package kvstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// exerciseKV runs the shared contract every backend must satisfy.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()

	// Absent key is not an error.
	if _, ok, err := kv.Get("missing"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want false, nil", ok, err)
	}

	if err := kv.Set("alpha", []byte("one")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok, err := kv.Get("alpha")
	if err != nil || !ok || !bytes.Equal(got, []byte("one")) {
		t.Fatalf("get after set: %q ok=%v err=%v", got, ok, err)
	}

	// Overwrite replaces the value.
	if err := kv.Set("alpha", []byte("two")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _, _ = kv.Get("alpha")
	if !bytes.Equal(got, []byte("two")) {
		t.Fatalf("overwrite did not replace value, got %q", got)
	}

	// Delete, twice. The second is a no-op.
	if err := kv.Delete("alpha"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := kv.Delete("alpha"); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("alpha"); ok {
		t.Fatal("key still present after delete")
	}
}

func TestDirKV(t *testing.T) {
	kv, err := OpenDir(filepath.Join(t.TempDir(), "ns"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	exerciseKV(t, kv)
}

func TestDirKV_SharedAcrossHandles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ns")
	writer, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	reader, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := writer.Set("shared", []byte("hello")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := reader.Get("shared")
	if err != nil || !ok || string(got) != "hello" {
		t.Errorf("second handle did not observe the write: %q ok=%v err=%v", got, ok, err)
	}
}

func TestDirKV_NoTempFilesLeftBehind(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ns")
	kv, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if err := kv.Set("key", []byte("value")); err != nil {
			t.Fatal(err)
		}
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name() != "key" {
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.Name()
		}
		t.Errorf("namespace dir should hold exactly the key file, got %v", names)
	}
}

func TestSQLiteKV(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "ns.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	exerciseKV(t, kv)
}

func TestBadgerKV(t *testing.T) {
	kv, err := OpenBadger(filepath.Join(t.TempDir(), "ns.badger"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	exerciseKV(t, kv)
}

func TestOpen_DispatchesByExtension(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		path string
		want string
	}{
		{filepath.Join(base, "ns.db"), "*kvstore.SQLiteKV"},
		{filepath.Join(base, "ns.badger"), "*kvstore.BadgerKV"},
		{filepath.Join(base, "ns"), "*kvstore.DirKV"},
	}
	for _, tt := range tests {
		kv, err := Open(tt.path)
		if err != nil {
			t.Fatalf("Open(%s): %v", tt.path, err)
		}
		switch kv.(type) {
		case *SQLiteKV:
			if tt.want != "*kvstore.SQLiteKV" {
				t.Errorf("Open(%s) picked SQLite", tt.path)
			}
		case *BadgerKV:
			if tt.want != "*kvstore.BadgerKV" {
				t.Errorf("Open(%s) picked Badger", tt.path)
			}
		case *DirKV:
			if tt.want != "*kvstore.DirKV" {
				t.Errorf("Open(%s) picked the directory backend", tt.path)
			}
		}
		kv.Close()
	}
}
