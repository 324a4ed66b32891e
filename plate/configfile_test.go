package plate

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {
	in := strings.Join([]string{
		"# growth conditions for the rha experiment",
		"LB\tblank\t1-2",
		"LB\tWT\t3,4",
		"M9-glu\tblank\t5-6",
		"# M9 strains",
		"M9-glu\tWT\t7-8",
		"M9-glu\tKO\t9,11",
	}, "\n")

	cfg, err := ReadConfig(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	want := Configuration{
		{Name: "LB", Blank: []WellIndex{1, 2}, Samples: []Sample{{Name: "WT", Wells: []WellIndex{3, 4}}}},
		{Name: "M9-glu", Blank: []WellIndex{5, 6}, Samples: []Sample{
			{Name: "WT", Wells: []WellIndex{7, 8}},
			{Name: "KO", Wells: []WellIndex{9, 11}},
		}},
	}

	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestReadConfigErrors(t *testing.T) {
	for _, v := range []struct {
		Name string
		In   string
	}{
		{"wrong field count", "LB\tWT\n"},
		{"no data lines", "# nothing here\n"},
		{"empty wells field", "LB\tWT\t \n"},
		{"backwards range", "LB\tWT\t8-3\n"},
		{"non-numeric well", "LB\tWT\t1,two\n"},
		{"zero well", "LB\tWT\t0-4\n"},
		{"duplicate sample row", "LB\tWT\t1-2\nLB\tWT\t3-4\n"},
		{"duplicate blank row", "LB\tblank\t1-2\nLB\tblank\t3-4\n"},
	} {
		cfg, err := ReadConfig(strings.NewReader(v.In))
		if err == nil {
			t.Errorf("%s: expected an error, got %+v", v.Name, cfg)
			continue
		}

		var ce ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("%s: error %v is not a ConfigurationError", v.Name, err)
		}
	}
}

func TestParseWellSpec(t *testing.T) {
	for _, v := range []struct {
		In   string
		Want []WellIndex
	}{
		{"1-4", []WellIndex{1, 2, 3, 4}},
		{"7,9", []WellIndex{7, 9}},
		{"12", []WellIndex{12}},
		{" 3 - 5 ", []WellIndex{3, 4, 5}},
		{"1, 2, 3", []WellIndex{1, 2, 3}},
	} {
		got, err := parseWellSpec(v.In)
		if err != nil {
			t.Errorf("parseWellSpec(%q): %v", v.In, err)
			continue
		}
		if !reflect.DeepEqual(got, v.Want) {
			t.Errorf("parseWellSpec(%q) = %v, want %v", v.In, got, v.Want)
		}
	}
}
