// Package report renders runner results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"aoc2023/internal/runner"
)

var headers = []string{"DAY", "PART", "ANSWER", "STATUS", "TIME", "NOTE"}

const statusCol = 3

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	statusStyles = map[runner.Status]lipgloss.Style{
		runner.StatusSolved:  cellStyle.Foreground(lipgloss.Color("3")),
		runner.StatusCorrect: cellStyle.Foreground(lipgloss.Color("2")),
		runner.StatusWrong:   cellStyle.Foreground(lipgloss.Color("1")).Bold(true),
		runner.StatusFailed:  cellStyle.Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// Rows returns the cells of each result, in the order of the table headers.
func Rows(results []runner.Result) [][]string {
	rows := make([][]string, 0, len(results))

	for _, res := range results {
		answer := "-"
		if res.Err == nil {
			answer = strconv.Itoa(res.Answer)
		}

		rows = append(rows, []string{
			strconv.Itoa(res.Day),
			res.Part.String(),
			answer,
			res.Status.String(),
			res.Elapsed.Round(time.Microsecond).String(),
			note(res),
		})
	}

	return rows
}

func note(res runner.Result) string {
	switch res.Status {
	case runner.StatusFailed:
		return res.Err.Error()
	case runner.StatusWrong:
		return fmt.Sprintf("want %d", res.Expected)
	default:
		return ""
	}
}

// Render writes results to w, as a coloured table when styled is set and
// as tab-separated lines otherwise, followed by a summary line.
func Render(w io.Writer, results []runner.Result, styled bool) error {
	rows := Rows(results)

	var out string
	if styled {
		out = renderTable(results, rows)
	} else {
		out = renderPlain(rows)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", out, Summary(results))

	return err
}

func renderTable(results []runner.Result, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			if col == statusCol && row >= 0 && row < len(results) {
				return statusStyles[results[row].Status]
			}

			return cellStyle
		})

	return t.String()
}

func renderPlain(rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, "\t"))

	for _, r := range rows {
		lines = append(lines, strings.TrimRight(strings.Join(r, "\t"), "\t"))
	}

	return strings.Join(lines, "\n")
}

// Summary counts results per status, e.g. "2 correct, 1 wrong".
func Summary(results []runner.Result) string {
	counts := make(map[runner.Status]int)
	for _, res := range results {
		counts[res.Status]++
	}

	var parts []string

	for _, s := range []runner.Status{runner.StatusCorrect, runner.StatusSolved, runner.StatusWrong, runner.StatusFailed} {
		if n := counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}

	if len(parts) == 0 {
		return "nothing to run"
	}

	return strings.Join(parts, ", ")
}
