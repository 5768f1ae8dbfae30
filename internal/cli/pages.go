package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pageflip/internal/tui"
	"github.com/rshade/pageflip/pkg/paginate"
)

// countLen treats a bare item count as the opaque collection: the core
// only ever asks for its length.
func countLen(n int) int { return n }

func newPagesCmd() *cobra.Command {
	var (
		totalItems int
		pageSize   int
		page       int
		inner      int
		outer      int
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print an elided page bar",
		Long: "Print the compact page list (e.g. 1 ... 4 [5] 6 ... 10) for a collection size,\n" +
			"page size and current page. Out-of-range pages clamp to the nearest edge.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if totalItems < 0 {
				return errors.New("--total-items must be >= 0")
			}

			cfg := configFromContext(cmd.Context())
			if pageSize == 0 {
				pageSize = cfg.Pagination.PageSize
			}
			if inner < 0 {
				inner = cfg.Pagination.InnerWindow
			}
			if outer < 0 {
				outer = cfg.Pagination.OuterWindow
			}

			s := paginate.New(countLen, pageSize, totalItems).GoTo(page)

			plain, _ := cmd.Flags().GetBool("plain")
			mode := tui.DetectOutputMode(plain, os.Stdout)

			logger.Debug().
				Int("total_items", totalItems).
				Int("total_pages", s.TotalPages()).
				Int("page", s.CurrentPage()).
				Msg("rendering page bar")

			printer := message.NewPrinter(language.English)
			summary := printer.Sprintf("%d items · %d pages · page %d",
				totalItems, s.TotalPages(), s.CurrentPage())
			if mode == tui.OutputModeStyled {
				summary = tui.StatusStyle.Render(summary)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.PageBar(s, inner, outer, mode))
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&totalItems, "total-items", 0, "number of items in the collection")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (0 = config default)")
	cmd.Flags().IntVar(&page, "page", 1, "current page number (clamped into range)")
	cmd.Flags().IntVar(&inner, "inner", -1, "pages around the current page (-1 = config default)")
	cmd.Flags().IntVar(&outer, "outer", -1, "pages pinned to each end (-1 = config default)")
	_ = cmd.MarkFlagRequired("total-items")

	return cmd
}
