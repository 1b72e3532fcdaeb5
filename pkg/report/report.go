// Package report renders console tables for networks and run history.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/db"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// newTable builds a bordered table; columns listed in numeric are right-aligned.
func newTable(headers []string, rows [][]string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func title(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

// TopEntities prints the first limit ranked entities with their groups.
// limit <= 0 prints all of them.
func TopEntities(w io.Writer, n *models.Network, limit int) {
	top := n.Top
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}

	rows := make([][]string, len(top))
	for i, e := range top {
		rows[i] = []string{strconv.Itoa(i + 1), e.Name, n.GroupOf(e.Name), strconv.Itoa(e.Count)}
	}

	title(w, fmt.Sprintf("Top %d %ss (of %d selected, %d distinct)", len(top), n.Kind, len(n.Top), len(n.Counts)))
	fmt.Fprintln(w, newTable([]string{"#", n.Kind.PointsLabel(), "Group", "Titles"}, rows, 0, 3).Render())
}

// StrongestLinks prints links, typically already sorted by weight.
func StrongestLinks(w io.Writer, links []models.PairCount) {
	rows := make([][]string, len(links))
	for i, l := range links {
		rows[i] = []string{l.Source, l.Target, strconv.Itoa(l.Count)}
	}

	title(w, fmt.Sprintf("Strongest %d links", len(links)))
	fmt.Fprintln(w, newTable([]string{"Source", "Target", "Titles"}, rows, 2).Render())
}

// Runs prints the run history listing.
func Runs(w io.Writer, runs []db.Run) {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.FormatInt(r.RunID, 10),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Question,
			r.Kind,
			strconv.Itoa(r.TopN),
			r.GroupMode,
			strconv.Itoa(r.RecordCount),
			strconv.Itoa(r.PairCount),
			r.ResultsDir,
		}
	}

	fmt.Fprintln(w, newTable(
		[]string{"ID", "Created", "Question", "Kind", "Top", "Groups", "Records", "Links", "Results Dir"},
		rows, 0, 4, 6, 7,
	).Render())
}

// RunDetail prints one run with its ranked entities and strongest links.
func RunDetail(w io.Writer, run *db.Run, entities []db.RunEntity, links []db.RunLink) {
	title(w, fmt.Sprintf("Run %d (%s)", run.RunID, run.RunUUID))
	fmt.Fprintf(w, "Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Question:    %s (%s, %s groups)\n", run.Question, run.Kind, run.GroupMode)
	fmt.Fprintf(w, "Input:       %s\n", run.InputPath)
	fmt.Fprintf(w, "Input hash:  %s\n", run.InputHash)
	fmt.Fprintf(w, "Records:     %d\n", run.RecordCount)
	fmt.Fprintf(w, "Entities:    %d distinct, %d selected (top %d)\n", run.EntityCount, run.SelectedCount, run.TopN)
	fmt.Fprintf(w, "Links:       %d\n", run.PairCount)
	fmt.Fprintf(w, "Results:     %s\n\n", run.ResultsDir)

	entityRows := make([][]string, len(entities))
	for i, e := range entities {
		entityRows[i] = []string{strconv.Itoa(e.Rank), e.Name, e.Group, strconv.Itoa(e.Count)}
	}
	title(w, "Entities")
	fmt.Fprintln(w, newTable([]string{"#", "Name", "Group", "Titles"}, entityRows, 0, 3).Render())

	linkRows := make([][]string, len(links))
	for i, l := range links {
		linkRows[i] = []string{l.Source, l.Target, strconv.Itoa(l.Count)}
	}
	title(w, "Strongest links")
	fmt.Fprintln(w, newTable([]string{"Source", "Target", "Titles"}, linkRows, 2).Render())
}
