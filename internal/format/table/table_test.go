package table

import (
	"strings"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"home", "-"},
		{"nowplaying", "1s"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignRight})
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if out[0] != "home         -" {
		t.Fatalf("unexpected first line %q", out[0])
	}
	if out[1] != "nowplaying  1s" {
		t.Fatalf("unexpected second line %q", out[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil for no rows, got %v", out)
	}
}

func TestFormatWithRule(t *testing.T) {
	rows := [][]string{
		{"MODE", "INTERVAL"},
		{"volume", "-"},
	}
	out := FormatWithRule(rows, []Alignment{AlignLeft, AlignLeft})
	if len(out) != 3 {
		t.Fatalf("expected header, rule and row, got %d lines", len(out))
	}
	if !strings.HasPrefix(out[1], "-") || len(out[1]) != len(out[0]) {
		t.Fatalf("expected rule matching header width, got %q under %q", out[1], out[0])
	}
}
