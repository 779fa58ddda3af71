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
	bind              string
	serverName        string
	udpPort           int
	minPlayers        int
	admissionTimeout  time.Duration
	answerTimeout     time.Duration
	broadcastInterval time.Duration
	seed              int64
	verbose           bool
}

func (c *config) validate() error {
	if c.udpPort < 1 || c.udpPort > 65535 {
		return fmt.Errorf("invalid udp port (must be between 1-65535 inclusive): %d", c.udpPort)
	}
	if c.minPlayers < 1 {
		return fmt.Errorf("invalid minimum player count: %d", c.minPlayers)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QUIZWIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "quizwire-server",
		Short:         "A true/false trivia game server with UDP discovery and last-player-standing rounds.",
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

	fs.StringVarP(&cfg.bind, "bind", "b", "", "address to bind the game listener to (env: QUIZWIRE_BIND)")
	fs.StringVar(&cfg.serverName, "server-name", "QuizwireTriviaServer", "name advertised in discovery offers (env: QUIZWIRE_SERVER_NAME)")
	fs.IntVarP(&cfg.udpPort, "udp-port", "p", protocol.DefaultUDPPort, "discovery broadcast port (env: QUIZWIRE_UDP_PORT)")
	fs.IntVar(&cfg.minPlayers, "min-players", 2, "players required to start a game (env: QUIZWIRE_MIN_PLAYERS)")
	fs.DurationVar(&cfg.admissionTimeout, "admission-timeout", 10*time.Second, "idle window before the lobby closes (env: QUIZWIRE_ADMISSION_TIMEOUT)")
	fs.DurationVar(&cfg.answerTimeout, "answer-timeout", 10*time.Second, "fixed per-round answer window (env: QUIZWIRE_ANSWER_TIMEOUT)")
	fs.DurationVar(&cfg.broadcastInterval, "broadcast-interval", time.Second, "delay between discovery offers (env: QUIZWIRE_BROADCAST_INTERVAL)")
	fs.Int64Var(&cfg.seed, "seed", 0, "question picker seed, 0 for random (env: QUIZWIRE_SEED)")
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
	cmd.SetVersionTemplate("quizwire-server v{{.Version}}\n")

	return cmd
}
