package cli

import (
	"strings"
	"testing"

	"github.com/katalvlaran/flowcut/network"
)

func TestToDOT(t *testing.T) {
	net := network.New("s", "t")
	if err := net.AddEdge("s", "t", 3); err != nil {
		t.Fatal(err)
	}

	dot := toDOT(net, "s", "t", map[network.Edge]bool{
		{From: "s", To: "t", Cap: 3}: true,
	})

	for _, want := range []string{
		"digraph flowcut {",
		`"s" [shape=doublecircle];`,
		`"t" [shape=doublecircle];`,
		`"s" -> "t" [label="3", color=red, style=bold];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTPlain(t *testing.T) {
	net := network.New("a", "b")
	if err := net.AddEdge("a", "b", 1); err != nil {
		t.Fatal(err)
	}

	dot := toDOT(net, "", "", nil)
	if strings.Contains(dot, "doublecircle") {
		t.Error("plain export must not mark source/sink")
	}
	if !strings.Contains(dot, `"a" -> "b" [label="1"];`) {
		t.Errorf("missing plain edge line:\n%s", dot)
	}
}
