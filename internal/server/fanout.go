package server

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// sendToAll writes msg to every live connection concurrently and waits for
// every send to finish or fail before returning, so a round never starts
// on a partially delivered announcement. A failed send flags the
// connection dead; the error itself is not fatal to the game.
func (s *Server) sendToAll(ctx context.Context, conns []*playerConn, msg string) {
	targets := make([]*playerConn, 0, len(conns))
	for _, pc := range conns {
		if !pc.dead.Load() {
			targets = append(targets, pc)
		}
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxFanout)
	for _, pc := range targets {
		g.Go(func() error {
			if err := pc.send(msg); err != nil {
				pc.dead.Store(true)
				s.log.Warn("send failed",
					zap.String("player", pc.player.Name),
					zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}
