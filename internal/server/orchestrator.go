package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizwire/quizwire/internal/models"
	"github.com/quizwire/quizwire/internal/protocol"
	"github.com/quizwire/quizwire/internal/repositories/stats"
	"go.uber.org/zap"
)

// roundOutcome partitions a round's roster by how each player answered
type roundOutcome struct {
	correct    []*playerConn
	incorrect  []*playerConn
	noResponse []*playerConn
}

// runGame drives one game over a frozen roster: announce a question,
// collect answers, apply the elimination rules, and repeat until a single
// player answers correctly or the game is cancelled for lack of players.
func (s *Server) runGame(ctx context.Context, admitted []*playerConn) {
	if len(admitted) == 0 {
		s.log.Info("admission closed with no players")
		return
	}

	if len(admitted) < s.cfg.MinPlayers {
		// Not an error: the sole player is told and the lobby reopens.
		// No stats are recorded for a game that never ran.
		s.log.Info("cancelling game, not enough players",
			zap.Int("players", len(admitted)),
			zap.Int("min_players", s.cfg.MinPlayers))
		s.sendToAll(ctx, admitted, protocol.CancelledMessage())
		return
	}

	roster := make([]*playerConn, len(admitted))
	copy(roster, admitted)

	for round := 1; ; round++ {
		question := s.picker.Pick()
		if err := s.statsRepo.RecordQuestionServed(ctx, &stats.RecordQuestionServedInput{
			CorrectAnswer: question.Answer,
		}); err != nil {
			s.log.Warn("recording served question", zap.Error(err))
		}

		var announcement string
		if round == 1 {
			announcement = protocol.FirstRoundMessage(question.Prompt)
		} else {
			announcement = protocol.RoundMessage(round, playerNames(roster), question.Prompt)
		}
		s.log.Info("announcing question",
			zap.Int("round", round),
			zap.Int("players", len(roster)),
			zap.String("prompt", question.Prompt))
		s.sendToAll(ctx, roster, announcement)

		if roster = pruneDead(roster); len(roster) == 0 {
			s.log.Warn("all players disconnected, abandoning game")
			return
		}

		tokens := s.collectAnswers(roster)
		outcome := s.scoreRound(roster, tokens, question.Answer)

		switch {
		case len(outcome.correct) == 0:
			s.log.Info("no correct answers, all players proceed to the next round")

		case len(outcome.correct) == 1:
			s.finishGame(ctx, admitted, outcome.correct[0])
			return

		default:
			s.disqualify(ctx, append(outcome.incorrect, outcome.noResponse...))
			roster = outcome.correct
		}

		if roster = pruneDead(roster); len(roster) == 0 {
			s.log.Warn("all players disconnected, abandoning game")
			return
		}
	}
}

// scoreRound classifies every roster member's token against the correct
// answer. An invalid token scores as incorrect; no token is no-response.
func (s *Server) scoreRound(roster []*playerConn, tokens map[string]string, correct bool) *roundOutcome {
	want := models.AnswerFor(correct)
	outcome := &roundOutcome{}

	for _, pc := range roster {
		token, ok := tokens[pc.player.ID]
		answer := models.AnswerNone
		if ok {
			answer = protocol.NormalizeAnswer(token)
		}

		switch answer {
		case want:
			outcome.correct = append(outcome.correct, pc)
			s.log.Info("correct answer", zap.String("player", pc.player.Name))
		case models.AnswerNone:
			outcome.noResponse = append(outcome.noResponse, pc)
		default:
			outcome.incorrect = append(outcome.incorrect, pc)
			s.log.Info("incorrect answer",
				zap.String("player", pc.player.Name),
				zap.String("token", token))
		}
	}

	return outcome
}

// disqualify notifies and removes every loser of a decided round
func (s *Server) disqualify(ctx context.Context, losers []*playerConn) {
	for _, pc := range losers {
		s.log.Info("player disqualified", zap.String("player", pc.player.Name))
	}
	s.sendToAll(ctx, losers, protocol.DisqualifiedMessage())
}

// finishGame records the win and broadcasts the result with end-of-game
// statistics to every player admitted this game, eliminated ones included.
func (s *Server) finishGame(ctx context.Context, everyone []*playerConn, winner *playerConn) {
	s.log.Info("game won", zap.String("player", winner.player.Name))

	if err := s.statsRepo.RecordWin(ctx, &stats.RecordWinInput{
		PlayerName: winner.player.Name,
	}); err != nil {
		s.log.Warn("recording win", zap.Error(err))
	}

	lines, err := s.statsLines(ctx)
	if err != nil {
		s.log.Warn("compiling statistics", zap.Error(err))
	}

	s.sendToAll(ctx, everyone, protocol.GameOverMessage(winner.player.Name, lines))
}

// statsLines renders the end-of-game statistics block. Ties are reported
// as lists, never broken.
func (s *Server) statsLines(ctx context.Context) ([]string, error) {
	var lines []string

	active, err := s.statsRepo.GetMostActive(ctx, &stats.GetMostActiveInput{})
	if err != nil {
		return nil, err
	}
	switch len(active.PlayerNames) {
	case 0:
	case 1:
		lines = append(lines, fmt.Sprintf("Most active player: %s with %d games.",
			active.PlayerNames[0], active.Games))
	default:
		lines = append(lines, fmt.Sprintf("Most active players, each with %d games: %s",
			active.Games, strings.Join(active.PlayerNames, ", ")))
	}

	wins, err := s.statsRepo.GetMostWins(ctx, &stats.GetMostWinsInput{})
	if err != nil {
		return nil, err
	}
	switch len(wins.PlayerNames) {
	case 0:
	case 1:
		lines = append(lines, fmt.Sprintf("Top winner: %s with %d wins.",
			wins.PlayerNames[0], wins.Wins))
	default:
		lines = append(lines, fmt.Sprintf("Top winners, each with %d wins: %s",
			wins.Wins, strings.Join(wins.PlayerNames, ", ")))
	}

	dist, err := s.statsRepo.GetAnswerDistribution(ctx, &stats.GetAnswerDistributionInput{})
	if err != nil {
		return nil, err
	}
	lines = append(lines,
		fmt.Sprintf("Cumulative true answers: %.2f%%", dist.CumulativeTruePct),
		fmt.Sprintf("Cumulative false answers: %.2f%%", dist.CumulativeFalsePct),
		fmt.Sprintf("Current game true answers: %.2f%%", dist.CurrentGameTruePct),
		fmt.Sprintf("Current game false answers: %.2f%%", dist.CurrentGameFalsePct),
	)

	return lines, nil
}

func playerNames(roster []*playerConn) []string {
	names := make([]string, 0, len(roster))
	for _, pc := range roster {
		names = append(names, pc.player.Name)
	}
	return names
}

func pruneDead(roster []*playerConn) []*playerConn {
	live := roster[:0]
	for _, pc := range roster {
		if !pc.dead.Load() {
			live = append(live, pc)
		}
	}
	return live
}
