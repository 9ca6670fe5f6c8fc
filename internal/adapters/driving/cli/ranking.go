package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// outputRanking prints the top pairs. Terminals get a table; pipes and files
// get the plain line format so the output stays easy to grep.
func outputRanking(cmd *cobra.Command, profiles []domain.Profile, top []domain.PairScore) {
	out := cmd.OutOrStdout()
	if width, ok := terminalWidth(out); ok {
		fmt.Fprintln(out, renderRankingTable(profiles, top, width))
		return
	}
	writeRankingLines(out, top)
}

// writeRankingLines writes the classic ranking format with 1-indexed books.
func writeRankingLines(out io.Writer, top []domain.PairScore) {
	fmt.Fprintf(out, "Top %d Most Similar Book Pairs:\n", len(top))
	for _, p := range top {
		fmt.Fprintf(out, "Book %d and Book %d - have similarity: %.4f\n", p.Left+1, p.Right+1, p.Score)
	}
}

func renderRankingTable(profiles []domain.Profile, top []domain.PairScore, width int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("Top %d Most Similar Book Pairs", len(top)))
	tw.AppendHeader(table.Row{"#", "Book", "Book", "Similarity"})

	for i, p := range top {
		tw.AppendRow(table.Row{
			i + 1,
			bookLabel(profiles, p.Left),
			bookLabel(profiles, p.Right),
			fmt.Sprintf("%.4f", p.Score),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	if width > 0 {
		tw.SetAllowedRowLength(width)
	}
	return tw.Render()
}

// bookLabel renders "3: Moby Dick" for the 0-based index i.
func bookLabel(profiles []domain.Profile, i int) string {
	if i < 0 || i >= len(profiles) {
		return fmt.Sprintf("%d", i+1)
	}
	title := profiles[i].Title()
	if title == "" {
		title = filepath.Base(profiles[i].URI())
	}
	return fmt.Sprintf("%d: %s", i+1, title)
}

func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0, true
	}
	return width, true
}

type analysisJSON struct {
	Books   []bookJSON    `json:"books"`
	Pairs   []pairJSON    `json:"pairs"`
	Skipped []skippedJSON `json:"skipped"`
}

type bookJSON struct {
	Book        int    `json:"book"`
	Title       string `json:"title"`
	URI         string `json:"uri"`
	TotalTokens int    `json:"total_tokens"`
	Terms       int    `json:"terms"`
}

type pairJSON struct {
	Left       int     `json:"left"`
	Right      int     `json:"right"`
	Similarity float64 `json:"similarity"`
}

type skippedJSON struct {
	URI   string `json:"uri"`
	Error string `json:"error"`
}

func outputAnalysisJSON(cmd *cobra.Command, result *domain.CorpusResult, top []domain.PairScore) error {
	payload := analysisJSON{
		Books:   make([]bookJSON, 0, len(result.Profiles)),
		Pairs:   make([]pairJSON, 0, len(top)),
		Skipped: make([]skippedJSON, 0, len(result.Skipped)),
	}
	for i, p := range result.Profiles {
		payload.Books = append(payload.Books, bookJSON{
			Book:        i + 1,
			Title:       p.Title(),
			URI:         p.URI(),
			TotalTokens: p.TotalTokens(),
			Terms:       p.Len(),
		})
	}
	for _, p := range top {
		payload.Pairs = append(payload.Pairs, pairJSON{Left: p.Left + 1, Right: p.Right + 1, Similarity: p.Score})
	}
	for _, s := range result.Skipped {
		msg := ""
		if s.Err != nil {
			msg = s.Err.Error()
		}
		payload.Skipped = append(payload.Skipped, skippedJSON{URI: s.URI, Error: msg})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
