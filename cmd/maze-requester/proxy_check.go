package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvcrn/maze-requester/internal/maze"
)

func newProxyCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proxy-check",
		Short: "Print the proxy environment variables the requester would run with",
		Run: func(cmd *cobra.Command, args []string) {
			for _, kv := range maze.ProxySettings() {
				fmt.Fprintln(cmd.OutOrStdout(), kv)
			}
		},
	}
}
