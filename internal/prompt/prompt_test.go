package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestBoundedIntAcceptsFirstValidValue(t *testing.T) {
	in := strings.NewReader("abc\n0\n1001\n500\n")
	var out bytes.Buffer
	r := NewReader(in, &out)

	v, err := r.BoundedInt("potência? ", 1, 1000)
	if err != nil {
		t.Fatalf("BoundedInt returned error: %v", err)
	}
	if v != 500 {
		t.Errorf("BoundedInt = %d, want 500", v)
	}

	// Every rejected value must have produced a visible message.
	text := out.String()
	if !strings.Contains(text, "apenas números inteiros") {
		t.Error("missing format-error message for non-numeric input")
	}
	if got := strings.Count(text, "entre 1 e 1000"); got != 2 {
		t.Errorf("range message printed %d times, want 2 (for 0 and 1001)", got)
	}
}

func TestBoundedIntAcceptsBounds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"lower bound", "1\n", 1},
		{"upper bound", "24\n", 24},
		{"whitespace tolerated", "  12  \n", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input), io.Discard)
			v, err := r.BoundedInt("horas? ", 1, 24)
			if err != nil {
				t.Fatalf("BoundedInt returned error: %v", err)
			}
			if v != tt.want {
				t.Errorf("BoundedInt = %d, want %d", v, tt.want)
			}
		})
	}
}

func TestBoundedIntEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)
	if _, err := r.BoundedInt("? ", 1, 10); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestValidatedTextRetriesUntilValid(t *testing.T) {
	in := strings.NewReader("ab\nDesktop\n")
	var out bytes.Buffer
	r := NewReader(in, &out)

	got, err := r.ValidatedText("nome? ", ValidDeviceName, "nome inválido")
	if err != nil {
		t.Fatalf("ValidatedText returned error: %v", err)
	}
	if got != "Desktop" {
		t.Errorf("ValidatedText = %q, want %q", got, "Desktop")
	}
	if got := strings.Count(out.String(), "nome inválido"); got != 1 {
		t.Errorf("error message printed %d times, want 1", got)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		rejects int
	}{
		{"yes lowercase", "s\n", true, 0},
		{"yes uppercase", "S\n", true, 0},
		{"no lowercase", "n\n", false, 0},
		{"no uppercase", "N\n", false, 0},
		{"retries on invalid answers", "talvez\nsim\ns\n", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := NewReader(strings.NewReader(tt.input), &out)

			got, err := r.YesNo("continuar? ")
			if err != nil {
				t.Fatalf("YesNo returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("YesNo = %v, want %v", got, tt.want)
			}
			if got := strings.Count(out.String(), "Resposta inválida"); got != tt.rejects {
				t.Errorf("rejection message printed %d times, want %d", got, tt.rejects)
			}
		})
	}
}

func TestAckSwallowsEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)
	if err := r.Ack("Pressione Enter..."); err != nil {
		t.Errorf("Ack on closed input = %v, want nil", err)
	}
}

func TestValidDeviceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"two chars", "ab", false},
		{"three chars", "abc", true},
		{"twenty chars", strings.Repeat("a", 20), true},
		{"twenty-one chars", strings.Repeat("a", 21), false},
		{"accented runes counted once", "Ventilação", true},
		{"long accented name rejected", strings.Repeat("ã", 21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDeviceName(tt.input); got != tt.want {
				t.Errorf("ValidDeviceName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
