package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/quizwire/quizwire/internal/protocol"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	count      int
	serverAddr string
	udpPort    int
	maxRetries int
	retryDelay time.Duration
	seed       int64
	verbose    bool
}

func (c *config) validate() error {
	if c.count < 1 {
		return fmt.Errorf("invalid bot count: %d", c.count)
	}
	if c.udpPort < 1 || c.udpPort > 65535 {
		return fmt.Errorf("invalid udp port (must be between 1-65535 inclusive): %d", c.udpPort)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QUIZWIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "quizwire-bot",
		Short:         "Bot players for the quizwire trivia server, answering at random.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.count, "count", "c", 1, "number of bots to run (env: QUIZWIRE_COUNT)")
	fs.StringVar(&cfg.serverAddr, "server", "", "game server address, skipping discovery (env: QUIZWIRE_SERVER)")
	fs.IntVarP(&cfg.udpPort, "udp-port", "p", protocol.DefaultUDPPort, "discovery port to listen on (env: QUIZWIRE_UDP_PORT)")
	fs.IntVar(&cfg.maxRetries, "max-retries", 5, "reconnect attempts before giving up (env: QUIZWIRE_MAX_RETRIES)")
	fs.DurationVar(&cfg.retryDelay, "retry-delay", 500*time.Millisecond, "pause between reconnect attempts (env: QUIZWIRE_RETRY_DELAY)")
	fs.Int64Var(&cfg.seed, "seed", 0, "answer seed, 0 for random (env: QUIZWIRE_SEED)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: QUIZWIRE_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("quizwire-bot v{{.Version}}\n")

	return cmd
}
