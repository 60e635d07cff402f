package agent

import (
	"context"
	"fmt"
	"strings"
)

// TranslateSteps translates the full ordered instruction list in a single
// batch call so step numbering survives and no step loses context. The
// reply must split back into exactly the same number of steps; anything
// else is a translation failure and the caller drops the route rather than
// emitting mixed languages.
func TranslateSteps(ctx context.Context, steps []string) ([]string, error) {
	if len(steps) == 0 {
		return nil, nil
	}

	prompt := "Traduce estas instrucciones al español. Responde con una instrucción por línea, en el mismo orden, sin numeración ni texto adicional:\n" +
		strings.Join(steps, "\n")

	content, err := complete(ctx, prompt, 300)
	if err != nil {
		return nil, err
	}

	out := SplitSteps(content)
	if len(out) != len(steps) {
		return nil, fmt.Errorf("translated %d steps, want %d", len(out), len(steps))
	}

	return out, nil
}

// SplitSteps breaks a translated reply back into ordered steps, tolerating
// the numbering and bullets models like to add anyway.
func SplitSteps(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = trimNumbering(strings.TrimSpace(line))
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
	}
	return out
}

func trimNumbering(line string) string {
	line = strings.TrimPrefix(line, "- ")
	line = strings.TrimPrefix(line, "• ")

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return line
	}
	if line[i] == '.' || line[i] == ')' {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
