// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/tool"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the extraction engine as an MCP tool over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "epifield",
				Version: "0.1.0",
			}, nil)
			mcp.AddTool(server, tool.MetadataParseIntakeDocument, tool.ParseIntakeDocument)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
