package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top runs saved with 'snake --save'.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("2"))
)

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All recorded runs deleted.")
		return nil
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderScores(runs))
	return nil
}

// renderScores formats runs as a table, best run highlighted.
func renderScores(runs []storage.RunEntry) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("High Scores - Snake"))
	sb.WriteString("\n\n")

	if len(runs) == 0 {
		sb.WriteString("No scores recorded yet.\n\n")
		sb.WriteString("Play 'snake --save' to set the first high score!")
		return sb.String()
	}

	rows := make([][]string, 0, len(runs))
	for i, r := range runs {
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			r.Reason,
			date,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Length", "Ended By", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return bestStyle
			default:
				return cellStyle
			}
		})

	sb.WriteString(t.Render())
	return sb.String()
}
