package agent

import (
	"reflect"
	"testing"
)

func TestSplitSteps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"plain lines",
			"Camina hacia el norte\nGira a la derecha",
			[]string{"Camina hacia el norte", "Gira a la derecha"},
		},
		{
			"numbered despite instructions",
			"1. Camina hacia el norte\n2) Gira a la derecha\n10. Cruza la avenida",
			[]string{"Camina hacia el norte", "Gira a la derecha", "Cruza la avenida"},
		},
		{
			"bullets and blank lines",
			"- Camina hacia el norte\n\n• Gira a la derecha\n   \n",
			[]string{"Camina hacia el norte", "Gira a la derecha"},
		},
		{
			"surrounding whitespace",
			"  Camina hacia el norte  \r\n\tGira a la derecha",
			[]string{"Camina hacia el norte", "Gira a la derecha"},
		},
		{
			"digits inside text survive",
			"Camina 200 metros\nAv. Sarmiento 800",
			[]string{"Camina 200 metros", "Av. Sarmiento 800"},
		},
		{
			"empty reply",
			"",
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSteps(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitSteps(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTrimNumbering(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. Gira a la derecha", "Gira a la derecha"},
		{"12) Gira a la derecha", "Gira a la derecha"},
		{"- Gira a la derecha", "Gira a la derecha"},
		{"Gira a la derecha", "Gira a la derecha"},
		{"24 de Septiembre", "24 de Septiembre"},
		{"100", "100"},
	}

	for _, tc := range tests {
		if got := trimNumbering(tc.in); got != tc.want {
			t.Errorf("trimNumbering(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
