package arena

import (
	"errors"
	"testing"
)

func TestAllocateSequentialHandles(t *testing.T) {
	a := New[int]()
	if a.Len() != 0 {
		t.Fatalf("fresh arena should be empty, has %d nodes", a.Len())
	}
	for want := Handle(0); want < 4; want++ {
		h, err := a.Allocate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h != want {
			t.Errorf("expected handle %d, got %d", want, h)
		}
	}
	if a.Len() != 4 {
		t.Errorf("expected 4 allocated nodes, have %d", a.Len())
	}
	if !a.Valid(0) || !a.Valid(3) {
		t.Errorf("allocated handles should be valid")
	}
	if a.Valid(4) || a.Valid(None) {
		t.Errorf("unallocated handles should be invalid")
	}
}

func TestFreshNodeIsEmptyLeaf(t *testing.T) {
	a := New[string]()
	h, err := a.Allocate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node := a.Node(h)
	if !node.IsLeaf() {
		t.Errorf("fresh node should have no children")
	}
	if node.HasValue() {
		t.Errorf("fresh node should hold no value")
	}
	for sel := uint8(0); sel < Degree; sel++ {
		if node.Child(sel) != None {
			t.Errorf("child slot %d not empty", sel)
		}
	}
}

func TestChildOrCreate(t *testing.T) {
	a := New[int]()
	root, err := a.Allocate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.Child(root, 3); ok {
		t.Fatalf("expected empty child slot")
	}
	child, err := a.ChildOrCreate(root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := a.ChildOrCreate(root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != child {
		t.Errorf("second ChildOrCreate must return the existing child: %d != %d", again, child)
	}
	if got, ok := a.Child(root, 3); !ok || got != child {
		t.Errorf("Child(root, 3) = %d, %v; want %d", got, ok, child)
	}
	if a.Len() != 2 {
		t.Errorf("expected 2 nodes, have %d", a.Len())
	}
}

func TestChildOrCreateRejectsBadArguments(t *testing.T) {
	a := New[int]()
	if _, err := a.ChildOrCreate(0, 0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("expected ErrInvalidHandle, got %v", err)
	}
	root, err := a.Allocate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.ChildOrCreate(root, 8); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestValueAccess(t *testing.T) {
	a := New[string]()
	h, err := a.Allocate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.Value(h); ok {
		t.Fatalf("expected no value on fresh node")
	}
	a.SetValue(h, "voxel")
	if v, ok := a.Value(h); !ok || v != "voxel" {
		t.Errorf("Value = %q, %v; want voxel", v, ok)
	}
	a.SetValue(h, "rock")
	if v, _ := a.Value(h); v != "rock" {
		t.Errorf("expected overwrite, got %q", v)
	}
	v, ok := a.TakeValue(h)
	if !ok || v != "rock" {
		t.Errorf("TakeValue = %q, %v; want rock", v, ok)
	}
	if _, ok := a.Value(h); ok {
		t.Errorf("expected value to be gone after TakeValue")
	}
	if _, ok := a.TakeValue(h); ok {
		t.Errorf("second TakeValue should report absence")
	}
}

func TestNodePointersStayValid(t *testing.T) {
	a := New[int]()
	h, err := a.Allocate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node := a.Node(h)
	for i := 0; i < 1000; i++ {
		if _, err := a.Allocate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if node != a.Node(h) {
		t.Errorf("node pointer invalidated by later allocations")
	}
}
