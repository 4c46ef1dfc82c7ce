package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
)

var (
	postsTagFlag  string
	postsPageFlag int
)

var postsCmd = &cobra.Command{
	Use:     "posts",
	Short:   "List the posts on the index",
	GroupID: "folio",
	RunE: func(cmd *cobra.Command, args []string) error {
		index := posts.Default()
		list := index.All()
		if postsTagFlag != "" {
			list = index.ByTag(postsTagFlag)
			if len(list) == 0 {
				return fmt.Errorf("no posts tagged %q (tags: %s)", postsTagFlag, strings.Join(index.Tags(), ", "))
			}
		}

		page := posts.Paginate(list, site.Default.IndexPageSize, postsPageFlag)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Page:   %d of %d\n", page.Number, page.TotalPages)
		fmt.Fprintf(w, "Posts:  %d\n\n", len(list))
		for _, p := range page.Posts {
			fmt.Fprintf(w, "%s  %s\n", p.Date.Format("2006-01-02"), p.Title)
			fmt.Fprintf(w, "            %s", p.Slug)
			if len(p.Tags) > 0 {
				fmt.Fprintf(w, "  [%s]", strings.Join(p.Tags, ", "))
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

func init() {
	postsCmd.Flags().StringVar(&postsTagFlag, "tag", "", "only list posts with this tag")
	postsCmd.Flags().IntVar(&postsPageFlag, "page", 1, "page number")
	rootCmd.AddCommand(postsCmd)
}
