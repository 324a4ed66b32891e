package summary

import (
	"reflect"
	"testing"
)

func selectedLabels(series []Series) []string {
	out := make([]string, 0, len(series))
	for _, s := range series {
		out = append(out, s.Label)
	}
	return out
}

func TestSelectAll(t *testing.T) {
	table := testTable()

	series := Select(table, nil, nil)
	if !reflect.DeepEqual(selectedLabels(series), table.Labels()) {
		t.Fatalf("selected %v, want every column in order", selectedLabels(series))
	}

	for _, s := range series {
		if !reflect.DeepEqual(s.X, table.Time) {
			t.Fatalf("series %s x values = %v, want the time column", s.Label, s.X)
		}
	}
}

func TestSelectByGroup(t *testing.T) {
	table := testTable()

	series := Select(table, []string{"LB"}, nil)
	if want := []string{"LB__WT", "LB__KO"}; !reflect.DeepEqual(selectedLabels(series), want) {
		t.Fatalf("selected %v, want %v", selectedLabels(series), want)
	}

	// A group that matches nothing selects nothing, without failing
	if series := Select(table, []string{"M63"}, nil); len(series) != 0 {
		t.Fatalf("selected %v for an unknown group", selectedLabels(series))
	}
}

func TestSelectBySample(t *testing.T) {
	table := testTable()

	series := Select(table, nil, []string{"M9-glu__WT", "LB__WT"})

	// Table order wins over filter order
	if want := []string{"LB__WT", "M9-glu__WT"}; !reflect.DeepEqual(selectedLabels(series), want) {
		t.Fatalf("selected %v, want %v", selectedLabels(series), want)
	}
}

func TestSelectSampleFilterWins(t *testing.T) {
	table := testTable()

	series := Select(table, []string{"M9-glu"}, []string{"LB__KO"})
	if want := []string{"LB__KO"}; !reflect.DeepEqual(selectedLabels(series), want) {
		t.Fatalf("selected %v, want the sample filter to take precedence", selectedLabels(series))
	}
}
