package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dvcrn/maze-requester/internal/credentials"
	"github.com/dvcrn/maze-requester/internal/maze"
)

type globalFlags struct {
	configPath         string
	token              string
	timeout            time.Duration
	insecureSkipVerify bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "maze-requester",
		Short: "Authenticated requests against the maze REST API",
		Long: `maze-requester sends GET, POST and PUT requests to the maze service
configured by MAZE_URL (or --config), authenticated with a bearer token from
--token, BEARER_TOKEN or the credentials file written by "login".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file (base_url, timeout, insecure_skip_verify)")
	pf.StringVar(&flags.token, "token", "", "bearer token, overrides BEARER_TOKEN and the credentials file")
	pf.DurationVar(&flags.timeout, "timeout", 0, "request timeout (default 5s)")
	pf.BoolVar(&flags.insecureSkipVerify, "insecure-skip-verify", false, "disable TLS certificate verification")

	for _, m := range []maze.Method{maze.MethodGet, maze.MethodPost, maze.MethodPut} {
		rootCmd.AddCommand(newRequestCmd(flags, m))
	}
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newProxyCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig resolves the requester config: file or env first, then explicit flags.
func (f *globalFlags) loadConfig(cmd *cobra.Command) (maze.Config, error) {
	var (
		cfg maze.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = maze.LoadConfigFile(f.configPath)
	} else {
		cfg, err = maze.ConfigFromEnv()
	}
	if err != nil {
		return maze.Config{}, err
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if cmd.Flags().Changed("insecure-skip-verify") {
		cfg.InsecureSkipVerify = f.insecureSkipVerify
	}
	return cfg, nil
}

// provider picks --token, then BEARER_TOKEN, then the credentials file.
func (f *globalFlags) provider() credentials.Provider {
	if f.token != "" {
		return credentials.NewStaticProvider(f.token)
	}
	fileProvider, err := credentials.NewFileProvider()
	if err != nil {
		return credentials.NewEnvProvider()
	}
	return credentials.NewChainProvider(credentials.NewEnvProvider(), fileProvider)
}
