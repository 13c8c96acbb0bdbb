package geniclust

import "testing"

func TestVertexDegrees(t *testing.T) {
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	deg, err := vertexDegrees(edges, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 2, 2, 1}
	for i, w := range want {
		if deg[i] != w {
			t.Errorf("deg[%d] = %d, want %d", i, deg[i], w)
		}
	}
}

func TestVertexDegrees_SkipsNegativeEndpoints(t *testing.T) {
	edges := []Edge{{0, 1}, {-1, -1}, {1, 2}}
	deg, err := vertexDegrees(edges, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 1}
	for i, w := range want {
		if deg[i] != w {
			t.Errorf("deg[%d] = %d, want %d", i, deg[i], w)
		}
	}
}

func TestVertexDegrees_OutOfRangeIsDomainError(t *testing.T) {
	_, err := vertexDegrees([]Edge{{0, 5}}, 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*DomainError); !ok {
		t.Errorf("got %T, want *DomainError", err)
	}
}

func TestVertexDegrees_SelfLoopIsDomainError(t *testing.T) {
	_, err := vertexDegrees([]Edge{{2, 2}}, 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*DomainError); !ok {
		t.Errorf("got %T, want *DomainError", err)
	}
}

func TestVertexDegrees_StarGraph(t *testing.T) {
	edges := []Edge{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	deg, err := vertexDegrees(edges, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{4, 1, 1, 1, 1}
	for i, w := range want {
		if deg[i] != w {
			t.Errorf("deg[%d] = %d, want %d", i, deg[i], w)
		}
	}
}
