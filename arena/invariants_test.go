package arena

import (
	"errors"
	"testing"
)

// buildPath allocates a root and a single chain of nodes below it.
func buildPath(t *testing.T, a *Arena[int], selectors ...uint8) (root Handle, leaf Handle) {
	t.Helper()
	root, err := a.Allocate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf = root
	for _, sel := range selectors {
		leaf, err = a.ChildOrCreate(leaf, sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return root, leaf
}

func TestCheckValidTree(t *testing.T) {
	a := New[int]()
	root, leaf := buildPath(t, a, 3, 5, 7)
	a.SetValue(leaf, 42)
	if err := a.Check(root, 3); err != nil {
		t.Errorf("expected valid tree, got %v", err)
	}
}

func TestCheckRejectsInvalidRoot(t *testing.T) {
	a := New[int]()
	if err := a.Check(0, 3); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure for empty arena, got %v", err)
	}
}

func TestCheckRejectsValueOnRoutingNode(t *testing.T) {
	a := New[int]()
	root, leaf := buildPath(t, a, 1, 2)
	a.SetValue(leaf, 1) // leaf sits at depth 2 of a depth-3 tree
	if err := a.Check(root, 3); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}

func TestCheckRejectsOverdeepNodes(t *testing.T) {
	a := New[int]()
	root, _ := buildPath(t, a, 1, 2, 3)
	if err := a.Check(root, 2); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}

func TestCheckRejectsCycles(t *testing.T) {
	a := New[int]()
	root, leaf := buildPath(t, a, 0)
	a.Node(leaf).children[0] = root // corrupt: link back to the root
	if err := a.Check(root, 4); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}

func TestCheckRejectsSharedChildren(t *testing.T) {
	a := New[int]()
	root, leaf := buildPath(t, a, 0)
	a.Node(root).children[1] = leaf // corrupt: two parents for one node
	if err := a.Check(root, 4); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}

func TestCheckRejectsUnreachableNodes(t *testing.T) {
	a := New[int]()
	root, _ := buildPath(t, a, 0)
	if _, err := a.Allocate(); err != nil { // orphan
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Check(root, 4); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}
