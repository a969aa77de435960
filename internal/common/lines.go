package common

import "strings"

// Lines splits input into lines. Carriage returns and a trailing newline are
// dropped, so an empty input yields no lines.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// Block is a run of non-blank lines.
type Block struct {
	// Line is the 1-based input line number of Lines[0].
	Line  int
	Lines []string
}

// Blocks groups lines into blocks separated by one or more blank lines.
// Lines holding only whitespace count as blank.
func Blocks(input string) []Block {
	var (
		blocks []Block
		cur    Block
	)

	for i, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(cur.Lines) > 0 {
				blocks = append(blocks, cur)
				cur = Block{}
			}

			continue
		}

		if len(cur.Lines) == 0 {
			cur.Line = i + 1
		}

		cur.Lines = append(cur.Lines, line)
	}

	if len(cur.Lines) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}
