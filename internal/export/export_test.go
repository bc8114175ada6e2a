package export

import (
	"os"
	"strings"
	"testing"
)

func TestWriter_CSVIsWrittenVerbatim(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("id,result\nm1,win\n")

	writer := NewWriter(Options{Format: FormatCSV, OutputDir: dir})
	path, err := writer.Write(payload)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !strings.HasSuffix(path, ".csv") {
		t.Errorf("path = %q, want .csv suffix", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("file content = %q, want %q", got, payload)
	}
}

func TestWriter_JSONIsIndented(t *testing.T) {
	dir := t.TempDir()

	writer := NewWriter(Options{Format: FormatJSON, OutputDir: dir})
	path, err := writer.Write([]byte(`{"matches":[{"id":"m1"}]}`))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.Contains(string(got), "\n  \"matches\"") {
		t.Errorf("json not indented: %q", got)
	}
}

func TestWriter_InvalidJSONIsStoredAsIs(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("definitely not json")

	writer := NewWriter(Options{Format: FormatJSON, OutputDir: dir})
	path, err := writer.Write(payload)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("file content = %q, want %q", got, payload)
	}
}

func TestWriter_UnknownFormatFails(t *testing.T) {
	writer := NewWriter(Options{Format: Format("xml"), OutputDir: t.TempDir()})
	if _, err := writer.Write([]byte("<matches/>")); err == nil {
		t.Error("expected error for unknown format")
	}
}
