package scroll

import (
	"testing"
	"time"
)

func TestMultiTapCyclesSameDigit(t *testing.T) {
	var m MultiTap
	table := DefaultTable()
	now := time.Unix(100, 0)

	glyph, replace, ok := m.Next('2', now, table)
	if !ok || replace || glyph != 'A' {
		t.Fatalf("expected fresh 'A', got %q replace=%v ok=%v", glyph, replace, ok)
	}

	want := []rune{'B', 'C', '2', 'A'}
	for _, expected := range want {
		now = now.Add(200 * time.Millisecond)
		glyph, replace, ok = m.Next('2', now, table)
		if !ok || !replace || glyph != expected {
			t.Fatalf("expected cycle to %q with replace, got %q replace=%v", expected, glyph, replace)
		}
	}
}

func TestMultiTapNewDigitStartsFresh(t *testing.T) {
	var m MultiTap
	table := DefaultTable()
	now := time.Unix(100, 0)

	m.Next('2', now, table)
	glyph, replace, _ := m.Next('3', now.Add(100*time.Millisecond), table)
	if replace || glyph != 'D' {
		t.Fatalf("expected fresh 'D' on new digit, got %q replace=%v", glyph, replace)
	}
}

func TestMultiTapTimeoutResetsCycle(t *testing.T) {
	var m MultiTap
	table := DefaultTable()
	now := time.Unix(100, 0)

	m.Next('2', now, table)
	m.Next('2', now.Add(200*time.Millisecond), table)
	glyph, replace, _ := m.Next('2', now.Add(5*time.Second), table)
	if replace || glyph != 'A' {
		t.Fatalf("expected timeout to restart cycle at 'A', got %q replace=%v", glyph, replace)
	}
}

func TestMultiTapUnknownDigit(t *testing.T) {
	var m MultiTap
	if _, _, ok := m.Next('x', time.Unix(100, 0), DefaultTable()); ok {
		t.Fatalf("expected unknown digit to be rejected")
	}
}

func TestMultiTapReset(t *testing.T) {
	var m MultiTap
	table := DefaultTable()
	now := time.Unix(100, 0)
	m.Next('2', now, table)
	m.Reset()
	glyph, replace, _ := m.Next('2', now.Add(50*time.Millisecond), table)
	if replace || glyph != 'A' {
		t.Fatalf("expected reset cycle to restart at 'A', got %q replace=%v", glyph, replace)
	}
}
