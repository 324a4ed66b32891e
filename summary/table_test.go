package summary

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
)

func testTable() *Table {
	return &Table{
		Time: []float64{0, 0.25, 0.5},
		Columns: []Column{
			{Label: "LB__WT", Values: []float64{0.01, 0.2, 0.55}},
			{Label: "LB__KO", Values: []float64{0.02, math.NaN(), 0.4}},
			{Label: "M9-glu__WT", Values: []float64{0, 0.1, 0.3}},
		},
	}
}

func TestTableRoundTrip(t *testing.T) {
	orig := testTable()

	var buf bytes.Buffer
	if err := orig.Write(&buf); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got.Groups(), orig.Groups()) {
		t.Fatalf("groups = %v, want %v", got.Groups(), orig.Groups())
	}
	if !reflect.DeepEqual(got.Time, orig.Time) {
		t.Fatalf("time = %v, want %v", got.Time, orig.Time)
	}
	if !reflect.DeepEqual(got.Labels(), orig.Labels()) {
		t.Fatalf("labels = %v, want %v", got.Labels(), orig.Labels())
	}

	// The NaN cell survives as NaN
	ko, _ := got.Column("LB__KO")
	if !math.IsNaN(ko.Values[1]) {
		t.Fatalf("LB__KO row 1 = %v, want NaN", ko.Values[1])
	}
	if ko.Values[2] != 0.4 {
		t.Fatalf("LB__KO row 2 = %v, want 0.4", ko.Values[2])
	}
}

func TestTableWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := testTable().Write(&buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("wrote %d lines, want header plus 3 rows", len(lines))
	}

	if lines[0] != "Time\tLB__WT\tLB__KO\tM9-glu__WT" {
		t.Fatalf("header = %q", lines[0])
	}

	// NaN is written as an empty cell, and there is no index column
	if lines[2] != "0.25\t0.2\t\t0.1" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestTableGroups(t *testing.T) {
	if got := testTable().Groups(); !reflect.DeepEqual(got, []string{"LB", "M9-glu"}) {
		t.Fatalf("groups = %v", got)
	}
}

func TestReadTableErrors(t *testing.T) {
	for _, v := range []struct {
		Name string
		In   string
	}{
		{"empty", ""},
		{"no time column", "LB__WT\tLB__KO\n0.1\t0.2\n"},
		{"bad time value", "Time\tLB__WT\nmidnight\t0.1\n"},
	} {
		if got, err := ReadTable(strings.NewReader(v.In)); err == nil {
			t.Errorf("%s: expected an error, got %+v", v.Name, got)
		}
	}
}
