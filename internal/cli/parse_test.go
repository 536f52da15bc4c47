package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/flowcut/flow"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNetwork(t *testing.T) {
	path := writeTemp(t, "net.toml", `
nodes = ["s", "a", "t"]

[[edges]]
from = "s"
to = "a"
capacity = 4

[[edges]]
from = "a"
to = "t"
capacity = 2
`)

	net, err := loadNetwork(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := net.Residual("s", "a"); got != 4 {
		t.Errorf("Residual(s,a) = %d, want 4", got)
	}
	if got := net.Residual("a", "t"); got != 2 {
		t.Errorf("Residual(a,t) = %d, want 2", got)
	}
}

func TestLoadNetworkErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown node", "nodes = [\"s\"]\n[[edges]]\nfrom = \"s\"\nto = \"x\"\ncapacity = 1\n"},
		{"negative capacity", "nodes = [\"s\", \"t\"]\n[[edges]]\nfrom = \"s\"\nto = \"t\"\ncapacity = -1\n"},
		{"malformed toml", "nodes = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "bad.toml", tt.content)
			if _, err := loadNetwork(path); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestLoadMatching(t *testing.T) {
	path := writeTemp(t, "instance.toml", `
group_a = ["1", "2"]
group_b = ["5"]

[[pairs]]
a = "1"
b = "5"
`)

	groupA, groupB, pairs, err := loadMatching(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(groupA) != 2 || len(groupB) != 1 || len(pairs) != 1 {
		t.Errorf("got %d/%d/%d, want 2/1/1", len(groupA), len(groupB), len(pairs))
	}
	if pairs[0].A != "1" || pairs[0].B != "5" {
		t.Errorf("pairs[0] = %+v, want {1 5}", pairs[0])
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		arg     string
		want    flow.Strategy
		wantErr bool
	}{
		{"bfs", flow.BreadthFirst, false},
		{"BFS", flow.BreadthFirst, false},
		{"breadth-first", flow.BreadthFirst, false},
		{"dfs", flow.DepthFirst, false},
		{"depth-first", flow.DepthFirst, false},
		{"dinic", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseStrategy(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStrategy(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseStrategy(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}
