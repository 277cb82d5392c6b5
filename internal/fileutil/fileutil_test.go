package fileutil_test

// Notes:
// - WriteFileAtomic Write/Close/Chmod failure branches are not tested:
//   triggering them needs platform-specific disk faults.
// - Permission-denied reads are skipped when running as root.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestReadText - Encoding-aware file reads
// ---------------------------------------------------------------------------

func TestReadText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "plain UTF-8",
			content: []byte("# Titre\nété\n"),
			want:    "# Titre\nété\n",
		},
		{
			name:    "UTF-8 BOM stripped",
			content: []byte("\xef\xbb\xbf# Title\n"),
			want:    "# Title\n",
		},
		{
			name:    "UTF-16LE with BOM",
			content: []byte{0xff, 0xfe, '#', 0, ' ', 0, 'A', 0, '\n', 0},
			want:    "# A\n",
		},
		{
			name:    "UTF-16BE with BOM",
			content: []byte{0xfe, 0xff, 0, '#', 0, ' ', 0, 'B'},
			want:    "# B",
		},
		{
			name:    "invalid UTF-8 replaced",
			content: []byte("a\xffb"),
			want:    "a\ufffdb",
		},
		{
			name:    "empty file",
			content: []byte{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "doc.md")
			if err := os.WriteFile(path, tt.content, 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := fileutil.ReadText(path)
			if err != nil {
				t.Fatalf("ReadText() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadText_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty path", path: "", wantErr: fileutil.ErrEmptyPath},
		{name: "missing file", path: filepath.Join(dir, "missing.md"), wantErr: os.ErrNotExist},
		{name: "directory", path: dir, wantErr: fileutil.ErrIsDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fileutil.ReadText(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadText(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestReadText_PermissionDenied(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	path := filepath.Join(t.TempDir(), "locked.md")
	if err := os.WriteFile(path, []byte("x"), 0o000); err != nil {
		t.Fatal(err)
	}

	_, err := fileutil.ReadText(path)
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("ReadText() error = %v, want %v", err, os.ErrPermission)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - All-or-nothing writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<p>x</p>\n"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<p>x</p>\n" {
			t.Errorf("content = %q, want %q", got, "<p>x</p>\n")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.html")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope", "out.html")
		err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("WriteFileAtomic() error = %v, want %v", err, os.ErrNotExist)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		err := fileutil.WriteFileAtomic("", []byte("x"), 0o644)
		if !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("WriteFileAtomic() error = %v, want %v", err, fileutil.ErrEmptyPath)
		}
	})

	t.Run("destination is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "sub")
		if err := os.Mkdir(target, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := fileutil.WriteFileAtomic(target, []byte("x"), 0o644); err == nil {
			t.Fatal("WriteFileAtomic() onto non-empty directory should fail")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsCSS - Style argument detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"my-style", false},
		{"./custom.css", true},
		{"/abs/style.css", true},
		{`C:\styles\a.css`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"body { color: red; }", true},
		{"default", false},
		{"./style.css", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsCSS(tt.input); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
