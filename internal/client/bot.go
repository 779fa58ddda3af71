package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/quizwire/quizwire/internal/models"
	"github.com/quizwire/quizwire/internal/protocol"
	"go.uber.org/zap"
)

// Define errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilLogger = errors.New("logger cannot be nil")
	ErrNoName    = errors.New("either a name or a registry is required")
	ErrGaveUp    = errors.New("gave up reconnecting")
)

const dialTimeout = 10 * time.Second

// Discover blocks on the well-known discovery port until a valid offer
// arrives, then returns the advertised game address. Datagrams that fail
// validation are skipped.
func Discover(ctx context.Context, udpPort int, log *zap.Logger) (string, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: udpPort})
	if err != nil {
		return "", fmt.Errorf("binding discovery listener: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer stop()

	log.Info("listening for offers", zap.Int("udp_port", udpPort))

	buf := make([]byte, 1024)
	for {
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", fmt.Errorf("reading offer: %w", err)
		}

		offer, err := protocol.DecodeOffer(buf[:n])
		if err != nil {
			log.Debug("skipping datagram", zap.String("from", addr.String()), zap.Error(err))
			continue
		}

		log.Info("received offer",
			zap.String("server_name", offer.ServerName),
			zap.String("from", addr.IP.String()),
			zap.Uint16("tcp_port", offer.TCPPort))
		return net.JoinHostPort(addr.IP.String(), strconv.Itoa(int(offer.TCPPort))), nil
	}
}

// Config holds configuration for a trivia bot
type Config struct {
	// Name identifies the bot; leave empty to draw one from Registry
	Name string

	// Registry supplies and recycles bot names when Name is empty
	Registry *NameRegistry

	// ServerAddr skips discovery and joins the given game directly
	ServerAddr string

	// UDPPort is the discovery port to listen on when ServerAddr is empty
	UDPPort int

	// MaxRetries bounds reconnect attempts after a connection failure
	MaxRetries int

	// RetryDelay is the pause between reconnect attempts
	RetryDelay time.Duration

	// Optional seed for testing
	Seed int64

	Logger *zap.Logger
}

// Bot joins trivia games and answers every question at random, the way a
// player mashing keys would.
type Bot struct {
	cfg    *Config
	log    *zap.Logger
	random *rand.Rand
}

// New creates a new trivia bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.Name == "" && cfg.Registry == nil {
		return nil, ErrNoName
	}

	if cfg.UDPPort == 0 {
		cfg.UDPPort = protocol.DefaultUDPPort
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 5
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Bot{
		cfg:    cfg,
		log:    cfg.Logger,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// Run plays one game to completion, reconnecting on transport failures up
// to the retry budget. The bot's name is released when it stops.
func (b *Bot) Run(ctx context.Context) error {
	name := b.cfg.Name
	if name == "" {
		name = b.cfg.Registry.Acquire()
		defer b.cfg.Registry.Release(name)
	}
	log := b.log.With(zap.String("bot", name))

	var lastErr error
	for attempt := 0; attempt <= b.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Warn("connection lost, finding a new game",
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			select {
			case <-time.After(b.cfg.RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		addr := b.cfg.ServerAddr
		if addr == "" {
			discovered, err := Discover(ctx, b.cfg.UDPPort, log)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				lastErr = err
				continue
			}
			addr = discovered
		}

		err := b.play(ctx, log, addr, name)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = err
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrGaveUp, b.cfg.MaxRetries, lastErr)
}

// play joins one game and answers until the server declares it over
func (b *Bot) play(ctx context.Context, log *zap.Logger, addr, name string) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("dialing game server: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err := conn.Write([]byte(name + "\n")); err != nil {
		return fmt.Errorf("sending handshake: %w", err)
	}
	log.Info("joined game", zap.String("server", addr))

	buf := make([]byte, 1024)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return fmt.Errorf("reading from server: %w", err)
		}
		msg := string(buf[:n])

		switch {
		case strings.Contains(msg, protocol.MarkerWinner),
			strings.Contains(msg, protocol.MarkerCancelled):
			log.Info("game over", zap.String("message", strings.TrimSpace(msg)))
			return nil

		case strings.Contains(msg, protocol.MarkerDisqualified):
			// Stay connected: the final results still arrive.
			log.Info("disqualified, waiting for the result")

		case strings.Contains(msg, protocol.MarkerFirstQuestion),
			strings.Contains(msg, protocol.MarkerRound):
			answer := b.randomAnswer()
			log.Info("answering", zap.String("answer", string(answer)))
			if _, err := conn.Write([]byte(answer)); err != nil {
				return fmt.Errorf("sending answer: %w", err)
			}
		}
	}
}

// randomAnswer flips a coin between yes and no
func (b *Bot) randomAnswer() models.Answer {
	if b.random.Intn(2) == 1 {
		return models.AnswerYes
	}
	return models.AnswerNo
}
