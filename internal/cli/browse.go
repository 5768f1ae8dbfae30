package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pageflip/internal/tui"
)

// maxBrowseLineLen guards against pathological single-line files.
const maxBrowseLineLen = 1024 * 1024

func newBrowseCmd() *cobra.Command {
	var (
		pageSize   int
		sampleRows int
	)

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Interactively page through the lines of a file",
		Long: "Open an interactive pager over the lines of a file, or over generated\n" +
			"sample rows when no file is given. Arrow keys turn pages, ':' jumps to a\n" +
			"typed page number, '/' filters rows, '+'/'-' resize the page.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("browse requires an interactive terminal")
			}

			rows, err := browseRows(args, sampleRows)
			if err != nil {
				return err
			}

			cfg := configFromContext(cmd.Context())
			pcfg := cfg.Pagination
			if pageSize > 0 {
				pcfg.PageSize = pageSize
			}

			logger.Debug().Int("rows", len(rows)).Int("page_size", pcfg.PageSize).Msg("starting browser")

			p := tea.NewProgram(tui.NewBrowseModel(rows, pcfg))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running interactive browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (0 = config default)")
	cmd.Flags().IntVar(&sampleRows, "rows", 100, "sample row count when no file is given")

	return cmd
}

// browseRows loads the collection to page through: the lines of the
// named file, or generated sample rows.
func browseRows(args []string, sampleRows int) ([]string, error) {
	if len(args) == 0 {
		if sampleRows < 0 {
			sampleRows = 0
		}
		rows := make([]string, sampleRows)
		for i := range rows {
			rows[i] = fmt.Sprintf("sample row %d", i+1)
		}
		return rows, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBrowseLineLen)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return rows, nil
}
