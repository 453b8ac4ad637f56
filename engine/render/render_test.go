package render

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vuegraph/vuegraph/engine/domain"
	"github.com/vuegraph/vuegraph/engine/vuemap"
)

func demoModel() *domain.GraphModel {
	nodes := []domain.MapNode{
		{ID: "1", Title: "water", Resource: domain.ResourceText},
		{ID: "2", Title: "evaporation", Resource: domain.ResourceLink},
		{ID: "3", Title: "", Resource: domain.ResourceImage},
	}
	links := []domain.MapLink{
		{SourceID: "1", TargetID: "2", Label: "drives", Directed: true},
		{SourceID: "2", TargetID: "3", Label: "", Directed: false},
	}
	return domain.NewGraphModel("demo", nodes, links)
}

func TestNodeRows(t *testing.T) {
	m := demoModel()

	rows := NodeRows(m, false)
	want := [][]string{{"1"}, {"2"}, {"3"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %v, got %v", want, rows)
	}
}

func TestNodeRows_Verbose(t *testing.T) {
	m := demoModel()

	rows := NodeRows(m, true)
	want := [][]string{
		{"1", "water", "text"},
		{"2", "evaporation", "link"},
		{"3", "", "image"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %v, got %v", want, rows)
	}
}

func TestLinkRows(t *testing.T) {
	m := demoModel()

	rows := LinkRows(m, false)
	want := [][]string{{"1", "2"}, {"2", "3"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %v, got %v", want, rows)
	}
}

func TestLinkRows_Verbose(t *testing.T) {
	m := demoModel()

	rows := LinkRows(m, true)
	want := [][]string{
		{"water", "--[drives]-->", "evaporation"},
		{"evaporation", "--", "3"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %v, got %v", want, rows)
	}
}

func TestArrowNotation(t *testing.T) {
	cases := []struct {
		label    string
		directed bool
		want     string
	}{
		{"drives", true, "--[drives]-->"},
		{"drives", false, "--[drives]--"},
		{"", true, "-->"},
		{"", false, "--"},
	}
	for _, tc := range cases {
		got := arrow(domain.MapLink{Label: tc.label, Directed: tc.directed})
		if got != tc.want {
			t.Errorf("label %q directed %v: expected %q, got %q", tc.label, tc.directed, tc.want, got)
		}
	}
}

func TestEndpointTruncation(t *testing.T) {
	long := strings.Repeat("ab", 20) // 40 runes
	nodes := []domain.MapNode{
		{ID: "1", Title: long, Resource: domain.ResourceText},
		{ID: "2", Title: "short", Resource: domain.ResourceText},
	}
	links := []domain.MapLink{{SourceID: "1", TargetID: "2", Directed: true}}
	m := domain.NewGraphModel("t", nodes, links)

	rows := LinkRows(m, true)
	src := rows[0][0]
	if !strings.HasSuffix(src, "...") {
		t.Errorf("expected ... suffix, got %q", src)
	}
	if got := len([]rune(src)); got != maxEndpointRunes+3 {
		t.Errorf("expected %d runes, got %d", maxEndpointRunes+3, got)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(src, "...")) {
		t.Errorf("truncated endpoint %q is not a prefix of the title", src)
	}
}

func TestEndpointFallsBackToID(t *testing.T) {
	m := demoModel()

	rows := LinkRows(m, true)
	// Node 3 has no title; its link endpoint renders the id.
	if rows[1][2] != "3" {
		t.Errorf("expected id fallback, got %q", rows[1][2])
	}

	// Unknown endpoints also render the raw id.
	if got := endpointLabel(m, "999"); got != "999" {
		t.Errorf("expected raw id, got %q", got)
	}
}

func TestTable(t *testing.T) {
	out := Table([]string{"ID", "TITLE"}, [][]string{
		{"1", "water"},
		{"2", "evaporation"},
	})
	want := strings.Join([]string{
		"ID  TITLE",
		"--  -----------",
		"1   water",
		"2   evaporation",
		"",
	}, "\n")
	if out != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestTable_Empty(t *testing.T) {
	out := Table([]string{"ID"}, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected header and separator only, got %d lines", len(lines))
	}
	if lines[0] != "ID" || lines[1] != "--" {
		t.Errorf("unexpected table: %q", out)
	}
}

func TestNodeRows_RoundTripFromFile(t *testing.T) {
	content := `<LW-MAP xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" ID="0" label="trip.vue">
  <child ID="1" label="rain" xsi:type="node"/>
  <child ID="2" label="river" xsi:type="node"/>
  <child ID="3" label="sea" xsi:type="node"/>
</LW-MAP>
`
	path := filepath.Join(t.TempDir(), "trip.vue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	raw, err := vuemap.Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	m, err := vuemap.Extract(raw)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	verbose := NodeRows(m, true)
	for i, title := range []string{"rain", "river", "sea"} {
		if verbose[i][1] != title {
			t.Errorf("row %d: expected title %q, got %q", i, title, verbose[i][1])
		}
	}

	bare := NodeRows(m, false)
	for i, id := range []string{"1", "2", "3"} {
		if !reflect.DeepEqual(bare[i], []string{id}) {
			t.Errorf("row %d: expected bare id %q, got %v", i, id, bare[i])
		}
	}
}
