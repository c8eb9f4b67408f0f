package utils

import (
	"reflect"
	"testing"
)

func TestIDSetNoDuplicates(t *testing.T) {
	s := NewIDSet()

	if !s.Add("123") {
		t.Error("first Add should return true")
	}
	if s.Add("123") {
		t.Error("second Add of same id should return false")
	}
	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestIDSetIgnoresEmpty(t *testing.T) {
	s := NewIDSet()
	if s.Add("") {
		t.Error("empty identifier should be rejected")
	}
	if s.Size() != 0 {
		t.Errorf("size: got %d, want 0", s.Size())
	}
}

func TestIDSetUnionAcrossSources(t *testing.T) {
	s := NewIDSet()

	search := []string{"1", "2", "3"}
	category := []string{"3", "4", "2"}
	pinned := []string{"5", "1"}

	s.AddAll(search)
	s.AddAll(category)
	added := s.AddAll(pinned)

	if added != 1 {
		t.Errorf("pinned AddAll: got %d new, want 1", added)
	}
	if s.Size() != 5 {
		t.Errorf("union size: got %d, want 5 distinct ids", s.Size())
	}
}

func TestIDSetPreservesFirstSeenOrder(t *testing.T) {
	s := NewIDSet()
	s.AddAll([]string{"9", "1", "5", "1", "9", "3"})

	want := []string{"9", "1", "5", "3"}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values: got %v, want %v", got, want)
	}
}
