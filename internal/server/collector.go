package server

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// answerEvent is one reader goroutine's result for the round
type answerEvent struct {
	pc       *playerConn
	token    string
	answered bool
	err      error
}

// collectAnswers reads each live roster connection for the fixed answer
// window, keyed by player ID. Every reader holds its connection until the
// round deadline, so anything a player sends after their first message is
// consumed and dropped rather than left to leak into the next round, and
// every round has the same wall-clock length no matter how fast players
// answer. Connections that fail mid-round are flagged dead and score as
// no-response.
func (s *Server) collectAnswers(roster []*playerConn) map[string]string {
	deadline := time.Now().Add(s.cfg.AnswerTimeout)
	events := make(chan answerEvent, len(roster))

	readers := 0
	for _, pc := range roster {
		if pc.dead.Load() {
			continue
		}
		readers++
		go func(pc *playerConn) {
			token, answered, err := pc.readRound(deadline)
			events <- answerEvent{pc: pc, token: token, answered: answered, err: err}
		}(pc)
	}

	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	tokens := make(map[string]string, readers)
	for received := 0; received < readers; received++ {
		ev := <-events

		if ev.answered {
			tokens[ev.pc.player.ID] = ev.token
			s.log.Debug("answer received",
				zap.String("player", ev.pc.player.Name),
				zap.String("token", ev.token))
		}

		switch {
		case ev.err == nil:
			if !ev.answered {
				s.log.Info("player did not answer", zap.String("player", ev.pc.player.Name))
			}
		default:
			ev.pc.dead.Store(true)
			s.log.Warn("player connection failed during collection",
				zap.String("player", ev.pc.player.Name),
				zap.Error(ev.err))
		}
	}

	// A failed connection reports before the window closes; scoring still
	// waits out the rest of it.
	<-timer.C
	return tokens
}

// readRound reads the player's messages until the round deadline. The
// first token is the answer; later messages this round are drained and
// dropped. Deadline expiry is the normal way out, so it is not an error;
// anything else is a transport failure.
func (pc *playerConn) readRound(deadline time.Time) (string, bool, error) {
	if err := pc.conn.SetReadDeadline(deadline); err != nil {
		return "", false, err
	}

	// Leftover handshake bytes must not count as this round's answer.
	if n := pc.reader.Buffered(); n > 0 {
		if _, err := pc.reader.Discard(n); err != nil {
			return "", false, err
		}
	}

	var token string
	answered := false
	buf := make([]byte, 256)
	for {
		n, err := pc.reader.Read(buf)
		if err != nil {
			if isTimeout(err) {
				err = nil
			}
			return token, answered, err
		}
		if !answered {
			token = strings.TrimSpace(string(buf[:n]))
			answered = true
		}
	}
}
