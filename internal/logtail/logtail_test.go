package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", lines, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"WARN","timestamp":"2026-03-07T10:11:12.000Z","caller":"assets/assets.go:125","message":"image load failed","component":"assets","path":"northwind/team.png","attempt":2}`
	e := Parse(line)

	if e.Level != "WARN" || e.Component != "assets" || e.Message != "image load failed" {
		t.Fatalf("Parse() = %+v", e)
	}
	want := time.Date(2026, 3, 7, 10, 11, 12, 0, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if e.Fields["path"] != "northwind/team.png" || e.Fields["attempt"] != "2" {
		t.Fatalf("Fields = %v", e.Fields)
	}
	if _, ok := e.Fields["caller"]; ok {
		t.Fatalf("caller should not be a field")
	}

	s := e.String()
	for _, part := range []string{"WARN", "[assets]", "image load failed", "attempt=2 path=northwind/team.png"} {
		if !strings.Contains(s, part) {
			t.Fatalf("String() = %q, missing %q", s, part)
		}
	}
}

func TestParse_PlainText(t *testing.T) {
	e := Parse("panic: something odd")
	if e.Message != "panic: something odd" || e.Level != "" {
		t.Fatalf("Parse(plain) = %+v", e)
	}
	if e.String() != "panic: something odd" {
		t.Fatalf("String() = %q", e.String())
	}
}

func TestTail_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.log")
	data := `{"level":"INFO","message":"one"}` + "\n\n" + `{"level":"ERROR","message":"two"}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if len(entries) != 2 || entries[1].Level != "ERROR" || entries[1].Message != "two" {
		t.Fatalf("Tail() = %+v", entries)
	}
}
