package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quizwire/quizwire/internal/common/clock"
	"github.com/quizwire/quizwire/internal/common/uuid"
	"github.com/quizwire/quizwire/internal/discovery"
	"github.com/quizwire/quizwire/internal/models"
	"github.com/quizwire/quizwire/internal/questions"
	"github.com/quizwire/quizwire/internal/repositories/stats"
	"go.uber.org/zap"
)

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilStatsRepo     = errors.New("stats repository cannot be nil")
	ErrNilPicker        = errors.New("question picker cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
	ErrNilLogger        = errors.New("logger cannot be nil")
)

const (
	// sendTimeout bounds a single fan-out write
	sendTimeout = 5 * time.Second

	// maxFanout bounds the number of concurrent fan-out writers
	maxFanout = 16
)

// Config holds configuration for the trivia server
type Config struct {
	// Bind is the local address for the game listener; empty means all
	// interfaces. The TCP port is always chosen by the kernel and
	// advertised through discovery.
	Bind string

	// ServerName is advertised in discovery offers
	ServerName string

	// UDPPort is the well-known discovery port
	UDPPort int

	// BroadcastAddr overrides the discovery destination; tests point it
	// at loopback
	BroadcastAddr string

	// MinPlayers is the roster size required to start a game
	MinPlayers int

	// AdmissionTimeout is the lobby's idle accept window
	AdmissionTimeout time.Duration

	// AnswerTimeout is the fixed per-round response window
	AnswerTimeout time.Duration

	// BroadcastInterval is the delay between discovery offers
	BroadcastInterval time.Duration

	// Repository dependencies
	StatsRepo stats.Repository

	// Service dependencies
	Picker        questions.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// Server runs the lobby/game loop: broadcast discovery, admit players,
// play elimination rounds, report statistics, repeat.
type Server struct {
	cfg       *Config
	log       *zap.Logger
	statsRepo stats.Repository
	picker    questions.Picker
	clock     clock.Clock
	uuids     uuid.UUID

	mu     sync.Mutex
	status models.GameStatus
}

// playerConn pairs an admitted player with its connection. The dead flag
// is set on the first transport error and excludes the connection from
// all further rounds and fan-outs.
type playerConn struct {
	player *models.Player
	conn   net.Conn
	reader *bufio.Reader
	dead   atomic.Bool
}

// send writes one message within the fan-out write deadline
func (pc *playerConn) send(msg string) error {
	if err := pc.conn.SetWriteDeadline(time.Now().Add(sendTimeout)); err != nil {
		return err
	}
	_, err := pc.conn.Write([]byte(msg))
	return err
}

// New creates a new trivia server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}
	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.ServerName == "" {
		cfg.ServerName = "QuizwireTriviaServer"
	}
	if cfg.MinPlayers == 0 {
		cfg.MinPlayers = 2
	}
	if cfg.AdmissionTimeout == 0 {
		cfg.AdmissionTimeout = 10 * time.Second
	}
	if cfg.AnswerTimeout == 0 {
		cfg.AnswerTimeout = 10 * time.Second
	}
	if cfg.BroadcastInterval == 0 {
		cfg.BroadcastInterval = time.Second
	}

	return &Server{
		cfg:       cfg,
		log:       cfg.Logger,
		statsRepo: cfg.StatsRepo,
		picker:    cfg.Picker,
		clock:     cfg.Clock,
		uuids:     cfg.UUIDGenerator,
		status:    models.GameStatusLobby,
	}, nil
}

// Run binds the game listener and cycles lobby and game phases until the
// context is cancelled. Failing to bind a socket is fatal; everything
// after startup is recovered per player.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(s.cfg.Bind, "0"))
	if err != nil {
		return fmt.Errorf("binding game listener: %w", err)
	}
	defer ln.Close()

	tcpListener := ln.(*net.TCPListener)
	tcpPort := uint16(ln.Addr().(*net.TCPAddr).Port)

	broadcaster, err := discovery.New(&discovery.Config{
		ServerName:    s.cfg.ServerName,
		TCPPort:       tcpPort,
		UDPPort:       s.cfg.UDPPort,
		BroadcastAddr: s.cfg.BroadcastAddr,
		Interval:      s.cfg.BroadcastInterval,
		Logger:        s.log,
	})
	if err != nil {
		return fmt.Errorf("building discovery broadcaster: %w", err)
	}

	s.log.Info("server started, listening for players",
		zap.String("addr", ln.Addr().String()),
		zap.Int("udp_port", s.cfg.UDPPort))

	for ctx.Err() == nil {
		s.setStatus(models.GameStatusLobby)

		lobbyCtx, closeLobby := context.WithCancel(ctx)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := broadcaster.Run(lobbyCtx); err != nil {
				s.log.Warn("discovery broadcaster stopped", zap.Error(err))
			}
		}()

		admitted := s.acceptPlayers(ctx, tcpListener)

		// Roster frozen: discovery must stop before the first question.
		closeLobby()
		wg.Wait()

		if ctx.Err() != nil {
			s.closeAll(admitted)
			break
		}

		s.setStatus(models.GameStatusInProgress)
		s.runGame(ctx, admitted)

		s.closeAll(admitted)
		if err := s.statsRepo.ResetCurrentGame(ctx, &stats.ResetCurrentGameInput{}); err != nil {
			s.log.Warn("resetting current-game counters", zap.Error(err))
		}
		s.log.Info("game over, reopening lobby")
	}

	return ctx.Err()
}

func (s *Server) setStatus(status models.GameStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.log.Debug("state transition", zap.String("status", string(status)))
}

// Status reports whether the server is in the lobby or mid-game
func (s *Server) Status() models.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Server) closeAll(conns []*playerConn) {
	for _, pc := range conns {
		if err := pc.conn.Close(); err != nil {
			s.log.Debug("closing player connection", zap.Error(err))
		}
	}
}

// isTimeout reports whether err is a read/accept deadline expiry
func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
