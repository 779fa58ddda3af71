package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/quizwire/quizwire/internal/models"
	"github.com/quizwire/quizwire/internal/repositories/stats"
	"go.uber.org/zap"
)

// acceptPlayers admits players until the admission window closes. The
// lobby waits indefinitely for the first connection; after each admission
// the next one must arrive within the window or the roster freezes.
func (s *Server) acceptPlayers(ctx context.Context, ln *net.TCPListener) []*playerConn {
	_ = ln.SetDeadline(time.Time{})
	stop := context.AfterFunc(ctx, func() {
		_ = ln.SetDeadline(time.Now())
	})
	defer stop()

	var admitted []*playerConn
	for {
		conn, err := ln.Accept()
		if err != nil {
			if isTimeout(err) || errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				break
			}
			s.log.Warn("accept failed", zap.Error(err))
			continue
		}

		pc, err := s.admit(ctx, conn)
		if err != nil {
			s.log.Warn("handshake failed",
				zap.String("addr", conn.RemoteAddr().String()),
				zap.Error(err))
			_ = conn.Close()
		} else {
			admitted = append(admitted, pc)
			s.log.Info("player admitted",
				zap.String("name", pc.player.Name),
				zap.String("addr", pc.player.Addr))
		}

		_ = ln.SetDeadline(s.clock.Now().Add(s.cfg.AdmissionTimeout))
	}

	s.log.Info("admission closed", zap.Int("players", len(admitted)))
	return admitted
}

// admit performs the newline-terminated name handshake and registers the
// player. The read shares the admission window, so a client that connects
// and never finishes its handshake holds up only its own slot.
func (s *Server) admit(ctx context.Context, conn net.Conn) (*playerConn, error) {
	if err := conn.SetReadDeadline(s.clock.Now().Add(s.cfg.AdmissionTimeout)); err != nil {
		return nil, err
	}

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading handshake: %w", err)
	}

	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:       s.uuids.NewUUID(),
		Name:     strings.TrimSpace(line),
		Addr:     conn.RemoteAddr().String(),
		JoinedAt: s.clock.Now(),
	}

	// Showing up counts as participation even before the game starts.
	if err := s.statsRepo.RecordParticipation(ctx, &stats.RecordParticipationInput{
		PlayerName: player.Name,
	}); err != nil {
		return nil, fmt.Errorf("recording participation: %w", err)
	}

	return &playerConn{
		player: player,
		conn:   conn,
		reader: reader,
	}, nil
}
