package commands

import (
	"fmt"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// NewServerListsCommand creates the serverlists command group.
func NewServerListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serverlists",
		Aliases: []string{"serverlist", "sl"},
		Short:   "Browse custom server lists",
		Long:    "List user curated server lists and the servers they contain",
	}

	cmd.AddCommand(newServerListsListCommand())
	cmd.AddCommand(newServerListsGetCommand())
	cmd.AddCommand(newServerListsServersCommand())

	return cmd
}

func newServerListsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List server lists",
		Long:  "List every public custom server list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.ServerLists().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list server lists: %w", err)
			}

			headers := []string{"ID", "Name", "Owner", "Servers", "Updated"}

			return renderOption(cmd, result, headers, func(lists []teamwork.ServerList) []row {
				return lo.Map(lists, func(list teamwork.ServerList, _ int) row {
					return row{itoa(list.ID), list.Name, valueOrNA(list.Owner), itoa(list.ServerCount), valueOrNA(list.UpdatedAt)}
				})
			})
		},
	}
}

func newServerListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a server list",
		Long:  "Display a single custom server list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.ServerLists().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get server list: %w", err)
			}

			return renderOption(cmd, result, propertyHeaders, func(list teamwork.ServerList) []row {
				return propertyRows(
					"ID", itoa(list.ID),
					"Name", list.Name,
					"Description", list.Description,
					"Owner", list.Owner,
					"Servers", itoa(list.ServerCount),
					"Public", yesNo(list.Public),
					"Created", list.CreatedAt,
					"Updated", list.UpdatedAt,
				)
			})
		},
	}
}

func newServerListsServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "servers ID",
		Short: "List servers of a server list",
		Long:  "List the servers contained in a custom server list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.ServerLists().Servers(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to list server list servers: %w", err)
			}

			return renderOption(cmd, result, serverHeaders, serverRows)
		},
	}
}
