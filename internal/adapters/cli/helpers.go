package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// readRecipeFile loads the recipe lines of a file, see readRecipeLines
func readRecipeFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe file: %w", err)
	}
	defer file.Close()

	lines, err := readRecipeLines(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file %s: %w", path, err)
	}
	return lines, nil
}

// readRecipeLines returns one entry per recipe line. Blank lines, lone braces and
// comments starting with # or // are skipped so JSON-like files can be read directly.
func readRecipeLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", line == "{", line == "}":
			continue
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, "//"):
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// parseExternalInputs converts item=amount flag values, keeping their order
func parseExternalInputs(values []string) ([]production.ExternalInput, error) {
	inputs := make([]production.ExternalInput, 0, len(values))
	for _, value := range values {
		item, amountText, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("invalid external input %q: expected item=amount", value)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(amountText), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid external input %q: amount is not a number", value)
		}
		input := production.NewExternalInput(strings.TrimSpace(item), amount)
		if err := input.Validate(); err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
