package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/quizwire/quizwire/internal/protocol"
	"go.uber.org/zap"
)

// Broadcaster errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilLogger = errors.New("logger cannot be nil")
	ErrNoTCPPort = errors.New("tcp port cannot be zero")
)

// Config holds configuration for the discovery broadcaster
type Config struct {
	// ServerName is the advertised name, truncated to the offer field width
	ServerName string

	// TCPPort is the game port advertised in the offer
	TCPPort uint16

	// UDPPort is the well-known discovery port; defaults to protocol.DefaultUDPPort
	UDPPort int

	// BroadcastAddr is the destination address; defaults to the limited
	// broadcast address. Tests point it at loopback.
	BroadcastAddr string

	// Interval between offers; defaults to one second
	Interval time.Duration

	// Logger for send failures
	Logger *zap.Logger
}

// Broadcaster advertises the server over UDP while the lobby is open
type Broadcaster struct {
	payload  []byte
	addr     *net.UDPAddr
	interval time.Duration
	log      *zap.Logger
}

// New creates a discovery broadcaster for the given offer
func New(cfg *Config) (*Broadcaster, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.TCPPort == 0 {
		return nil, ErrNoTCPPort
	}

	udpPort := cfg.UDPPort
	if udpPort == 0 {
		udpPort = protocol.DefaultUDPPort
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = time.Second
	}

	dest := cfg.BroadcastAddr
	if dest == "" {
		dest = "255.255.255.255"
	}

	ip := net.ParseIP(dest)
	if ip == nil {
		return nil, fmt.Errorf("invalid broadcast address: %q", dest)
	}

	payload := protocol.EncodeOffer(&protocol.Offer{
		ServerName: cfg.ServerName,
		TCPPort:    cfg.TCPPort,
	})

	return &Broadcaster{
		payload:  payload,
		addr:     &net.UDPAddr{IP: ip, Port: udpPort},
		interval: interval,
		log:      cfg.Logger,
	}, nil
}

// Run sends one offer immediately and then one per interval until the
// context is cancelled. Send failures are logged and retried on the next
// tick; the broadcast is best effort.
func (b *Broadcaster) Run(ctx context.Context) error {
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("opening broadcast socket: %w", err)
	}
	defer conn.Close()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		if _, err := conn.WriteToUDP(b.payload, b.addr); err != nil {
			b.log.Warn("offer broadcast failed", zap.Error(err))
		} else {
			b.log.Debug("offer broadcast sent", zap.String("to", b.addr.String()))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
