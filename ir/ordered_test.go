package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedMapInsertionOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("z", FromInt(1))
	m.Set("a", FromInt(2))
	m.Set("m", FromInt(3))
	want := []string{"z", "a", "m"}
	if d := cmp.Diff(want, m.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestOrderedMapReplaceInPlace(t *testing.T) {
	m := NewOrderedMap()
	m.Set("a", FromInt(1))
	m.Set("b", FromInt(2))
	m.Set("a", FromInt(9))
	if got := m.Keys(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("keys %v", got)
	}
	if m.Find("a").Node.Value != "9" {
		t.Errorf("replace did not take: %s", m.Find("a").Node.Value)
	}
}

func TestOrderedMapErase(t *testing.T) {
	m := NewOrderedMap()
	m.Set("a", FromInt(1))
	m.Set("b", FromInt(2))
	m.Set("c", FromInt(3))
	if !m.Erase("b") {
		t.Fatal("erase reported absent")
	}
	if m.Erase("b") {
		t.Fatal("second erase reported present")
	}
	want := []string{"a", "c"}
	if d := cmp.Diff(want, m.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	// index must stay consistent after erase
	if e := m.Find("c"); e == nil || e.Node.Value != "3" {
		t.Errorf("find after erase: %v", e)
	}
	if e := m.At(1); e == nil || e.Key != "c" {
		t.Errorf("at after erase: %v", e)
	}
}

func TestOrderedMapSort(t *testing.T) {
	m := NewOrderedMap()
	m.Set("c", FromInt(3))
	m.Set("a", FromInt(1))
	m.Set("b", FromInt(2))
	m.Sort(func(x, y *OrderedEntry) bool { return x.Key < y.Key })
	want := []string{"a", "b", "c"}
	if d := cmp.Diff(want, m.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if e := m.Find("c"); e == nil || e.Node.Value != "3" {
		t.Errorf("find after sort: %v", e)
	}
}

func TestOrderedMapNilSafe(t *testing.T) {
	var m *OrderedMap
	if m.Len() != 0 || m.Find("x") != nil || m.At(0) != nil || m.Keys() != nil {
		t.Error("nil map accessors not safe")
	}
}
