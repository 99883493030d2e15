package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Reader reads validated, line-oriented answers from a console. Every
// rejected answer prints a message naming the violated constraint and the
// question is asked again; there is no retry limit. A Reader only fails
// when the underlying input is exhausted or broken.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewReader creates a Reader over the given input and output streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (r *Reader) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return r.in.Text(), nil
}

// BoundedInt asks prompt until the user supplies an integer v with
// min <= v <= max. Non-numeric input and out-of-range values each print
// a rejection message and re-prompt.
func (r *Reader) BoundedInt(prompt string, min, max int) (int, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}

		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(r.out, "Entrada inválida. Por favor, digite apenas números inteiros.")
			continue
		}
		if v < min || v > max {
			fmt.Fprintf(r.out, "Ops! O valor precisa estar entre %d e %d. Tente novamente.\n", min, max)
			continue
		}
		return v, nil
	}
}

// ValidatedText asks prompt until valid accepts the answer, printing
// errMsg verbatim on every rejection.
func (r *Reader) ValidatedText(prompt string, valid func(string) bool, errMsg string) (string, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return "", err
		}
		if valid(line) {
			return line, nil
		}
		fmt.Fprintln(r.out, errMsg)
	}
}

// YesNo asks prompt until the user answers "s" or "n" (case-insensitive)
// and reports whether the answer was yes.
func (r *Reader) YesNo(prompt string) (bool, error) {
	answer, err := r.ValidatedText(prompt, func(s string) bool {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "s", "n":
			return true
		}
		return false
	}, "Resposta inválida. Por favor, digite 's' para sim ou 'n' para não.")
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "s", nil
}

// Ack prints prompt and waits for the user to press Enter.
func (r *Reader) Ack(prompt string) error {
	_, err := r.readLine(prompt)
	if err == io.EOF {
		// A closed stdin still lets the reports finish.
		return nil
	}
	return err
}

// ValidName reports whether the name length in runes is within [min, max].
func ValidName(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// ValidDeviceName reports whether s is an acceptable device name, between
// 3 and 20 characters.
func ValidDeviceName(s string) bool {
	return ValidName(s, 3, 20)
}
