package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/dvcrn/maze-requester/internal/maze"
)

func newRequestCmd(flags *globalFlags, method maze.Method) *cobra.Command {
	var (
		data  string
		query string
	)
	name := strings.ToLower(string(method))

	cmd := &cobra.Command{
		Use:   name + " <path>",
		Short: fmt.Sprintf("Send a %s request to the maze", method),
		Long: fmt.Sprintf(`Send a %s request to MAZE_URL + <path> and print the JSON response.

Examples:
  maze-requester %s /rooms/7
  maze-requester %s /rooms --data '{"name": "entrance"}'
  maze-requester %s /rooms --data @room.json --query id`, method, name, name, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			payload, err := parsePayload(data)
			if err != nil {
				return err
			}

			requester, err := maze.NewRequester(cfg, flags.provider(), payload)
			if err != nil {
				return err
			}

			result, err := requester.Request(args[0], method)
			if err != nil {
				return err
			}

			return printResult(cmd, result, query)
		},
	}

	if method != maze.MethodGet {
		cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file to read it from a file")
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "gjson path to extract from the response")

	return cmd
}

// parsePayload decodes --data. Empty input leaves the requester default.
func parsePayload(data string) (interface{}, error) {
	if data == "" {
		return nil, nil
	}

	raw := []byte(data)
	if strings.HasPrefix(data, "@") {
		b, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		raw = b
	}

	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	return payload, nil
}

func printResult(cmd *cobra.Command, result interface{}, query string) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode response: %w", err)
	}

	if query != "" {
		value := gjson.GetBytes(out, query)
		if !value.Exists() {
			return fmt.Errorf("query %q matched nothing in the response", query)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value.String())
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
