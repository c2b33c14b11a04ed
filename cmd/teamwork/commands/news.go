package commands

import (
	"fmt"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

var newsHeaders = []string{"Hash", "Title", "Type", "Provider", "Created"}

// NewNewsCommand creates the news command group.
func NewNewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Browse the teamwork.tf news feed",
		Long:  "List news entries and display a single entry by hash",
	}

	cmd.AddCommand(newNewsListCommand())
	cmd.AddCommand(newNewsGetCommand())

	return cmd
}

func newNewsListCommand() *cobra.Command {
	var (
		page     int
		provider string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List news entries",
		Long:  "List the latest news, a specific page, or the news of one provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			var result mo.Option[[]teamwork.News]

			switch {
			case provider != "":
				result, err = client.News().ByProvider(cmd.Context(), provider)
			case page > 0:
				result, err = client.News().ByPage(cmd.Context(), page)
			default:
				result, err = client.News().Overview(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list news: %w", err)
			}

			return renderOption(cmd, result, newsHeaders, newsRows)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().StringVar(&provider, "provider", "", "only news from this provider")

	return cmd
}

func newNewsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASH",
		Short: "Get a news entry",
		Long:  "Display a single news entry by its hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.News().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get news entry: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(news teamwork.News) []row {
				return propertyRows(
					"Hash", news.Hash,
					"Title", news.Title,
					"Type", news.Type,
					"Provider", news.Provider,
					"Link", news.Link,
					"Created", news.CreatedAt,
				)
			})
		},
	}
}

func newsRows(entries []teamwork.News) []row {
	return lo.Map(entries, func(news teamwork.News, _ int) row {
		return row{news.Hash, news.Title, valueOrNA(news.Type), valueOrNA(news.Provider), valueOrNA(news.CreatedAt)}
	})
}
