package texthuff

import (
	"errors"
	"strings"
	"testing"
)

var testTexts = [...]string{
	"",
	"zzzz",
	"ab",
	"aaabbc",
	"abracadabra",
	"the quick brown fox jumps over the lazy dog",
	"mississippi river",
	"a\x00b\x00\x00c",
	"\xff\xfe\xfd\xff",
	"héllo, wörld",
}

func fibonacciTable(n int) FrequencyTable {
	freq := make(FrequencyTable, n)
	a, b := uint64(1), uint64(1)
	for i := 0; i < n; i++ {
		freq[Symbol('A'+i)] = a
		a, b = b, a+b
	}
	return freq
}

func TestBuildTree(t *testing.T) {
	tree, err := BuildTree(CountFrequencies("aaabbc"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 4\n",
		"\t0: Leaf{'a', 3}\n",
		"\t1: Leaf{'b', 2}\n",
		"\t2: Leaf{'c', 1}\n",
		"\t3: Internal{3, 2, 1}\n",
		"\t4: Internal{6, 0, 3}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if depth := tree.Depth(); depth != 2 {
		t.Errorf("expected depth 2, got %d", depth)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	freq := CountFrequencies("")
	if freq.Len() != 0 {
		t.Fatalf("expected empty table, got %d symbols", freq.Len())
	}

	tree, err := BuildTree(freq)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected nil tree, got %v", tree)
	}
}

func TestBuildTree_SingleLeaf(t *testing.T) {
	tree, err := BuildTree(CountFrequencies("zzzz"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	if !tree.IsDegenerate() {
		t.Errorf("expected single-leaf tree")
	}
	if tree.NumLeaves() != 1 || tree.NumInternal() != 0 {
		t.Errorf("expected 1 leaf and 0 internal nodes, got %d and %d", tree.NumLeaves(), tree.NumInternal())
	}

	root := tree.Node(tree.Root())
	if root.Kind != Leaf || root.Symbol != 'z' || root.Freq != 4 {
		t.Errorf("wrong root: %+v", root)
	}
	if root.Left != InvalidNode || root.Right != InvalidNode {
		t.Errorf("expected leaf without children, got %d, %d", root.Left, root.Right)
	}
	if depth := tree.Depth(); depth != 0 {
		t.Errorf("expected depth 0, got %d", depth)
	}
}

func TestBuildTree_NodeCounts(t *testing.T) {
	for _, text := range testTexts {
		if text == "" {
			continue
		}
		t.Run(text, func(t *testing.T) {
			freq := CountFrequencies(text)
			tree, err := BuildTree(freq)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			k := freq.Len()
			if tree.NumLeaves() != k {
				t.Errorf("expected %d leaves, got %d", k, tree.NumLeaves())
			}
			if tree.NumInternal() != k-1 {
				t.Errorf("expected %d internal nodes, got %d", k-1, tree.NumInternal())
			}
			if root := tree.Node(tree.Root()); root.Freq != uint64(len(text)) {
				t.Errorf("expected root frequency %d, got %d", len(text), root.Freq)
			}
		})
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	freq := CountFrequencies("abcdefgh abcdefgh")

	var first strings.Builder
	tree, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	_, _ = NewCodeTable(tree).Dump(&first)

	for i := 0; i < 20; i++ {
		var again strings.Builder
		tree, err := BuildTree(freq)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		_, _ = NewCodeTable(tree).Dump(&again)
		if first.String() != again.String() {
			t.Fatalf("wrong output on run %d:\n\texpect: %s\n\tactual: %s", i, first.String(), again.String())
		}
	}
}

func TestBuildTree_Skewed(t *testing.T) {
	const n = 40
	tree, err := BuildTree(fibonacciTable(n))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if depth := tree.Depth(); depth != n-1 {
		t.Errorf("expected depth %d, got %d", n-1, depth)
	}

	ct := NewCodeTable(tree)
	if ct.MaxSize() != n-1 {
		t.Errorf("expected longest code %d, got %d", n-1, ct.MaxSize())
	}
}

func TestNodeKind_String(t *testing.T) {
	if s := Leaf.String(); s != "Leaf" {
		t.Errorf("expected %q, got %q", "Leaf", s)
	}
	if s := Internal.String(); s != "Internal" {
		t.Errorf("expected %q, got %q", "Internal", s)
	}
	if s := NodeKind(7).String(); s != "NodeKind(7)" {
		t.Errorf("expected %q, got %q", "NodeKind(7)", s)
	}
}
