package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) recordParticipation(name string, times int) {
	for i := 0; i < times; i++ {
		err := s.repo.RecordParticipation(s.ctx, &RecordParticipationInput{PlayerName: name})
		s.Require().NoError(err)
	}
}

func (s *MemoryRepositoryTestSuite) TestMostActiveWithNoGames() {
	out, err := s.repo.GetMostActive(s.ctx, &GetMostActiveInput{})
	s.Require().NoError(err)

	s.Empty(out.PlayerNames)
	s.Equal(0, out.Games)
}

func (s *MemoryRepositoryTestSuite) TestMostActiveSingleLeader() {
	s.recordParticipation("alice", 3)
	s.recordParticipation("bob", 1)

	out, err := s.repo.GetMostActive(s.ctx, &GetMostActiveInput{})
	s.Require().NoError(err)

	s.Equal([]string{"alice"}, out.PlayerNames)
	s.Equal(3, out.Games)
}

func (s *MemoryRepositoryTestSuite) TestMostActiveReportsTiesAsList() {
	s.recordParticipation("alice", 2)
	s.recordParticipation("bob", 2)
	s.recordParticipation("carol", 1)

	out, err := s.repo.GetMostActive(s.ctx, &GetMostActiveInput{})
	s.Require().NoError(err)

	s.Equal([]string{"alice", "bob"}, out.PlayerNames)
	s.Equal(2, out.Games)
}

func (s *MemoryRepositoryTestSuite) TestMostWinsReportsTiesAsList() {
	s.Require().NoError(s.repo.RecordWin(s.ctx, &RecordWinInput{PlayerName: "bob"}))
	s.Require().NoError(s.repo.RecordWin(s.ctx, &RecordWinInput{PlayerName: "alice"}))

	out, err := s.repo.GetMostWins(s.ctx, &GetMostWinsInput{})
	s.Require().NoError(err)

	s.Equal([]string{"alice", "bob"}, out.PlayerNames)
	s.Equal(1, out.Wins)
}

func (s *MemoryRepositoryTestSuite) TestDistributionIsZeroWithoutQuestions() {
	out, err := s.repo.GetAnswerDistribution(s.ctx, &GetAnswerDistributionInput{})
	s.Require().NoError(err)

	s.Zero(out.CumulativeTruePct)
	s.Zero(out.CumulativeFalsePct)
	s.Zero(out.CurrentGameTruePct)
	s.Zero(out.CurrentGameFalsePct)
}

func (s *MemoryRepositoryTestSuite) TestDistributionSumsToOneHundred() {
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.RecordQuestionServed(s.ctx, &RecordQuestionServedInput{CorrectAnswer: true}))
	}
	s.Require().NoError(s.repo.RecordQuestionServed(s.ctx, &RecordQuestionServedInput{CorrectAnswer: false}))

	out, err := s.repo.GetAnswerDistribution(s.ctx, &GetAnswerDistributionInput{})
	s.Require().NoError(err)

	s.InDelta(75.0, out.CumulativeTruePct, 0.001)
	s.InDelta(25.0, out.CumulativeFalsePct, 0.001)
	s.InDelta(100.0, out.CumulativeTruePct+out.CumulativeFalsePct, 0.001)
	s.InDelta(100.0, out.CurrentGameTruePct+out.CurrentGameFalsePct, 0.001)
}

func (s *MemoryRepositoryTestSuite) TestResetCurrentGameKeepsCumulativeCounters() {
	s.Require().NoError(s.repo.RecordQuestionServed(s.ctx, &RecordQuestionServedInput{CorrectAnswer: true}))
	s.Require().NoError(s.repo.ResetCurrentGame(s.ctx, &ResetCurrentGameInput{}))

	// A second game sees fresh current-game counters but the cumulative
	// side still remembers the first game's question.
	s.Require().NoError(s.repo.RecordQuestionServed(s.ctx, &RecordQuestionServedInput{CorrectAnswer: false}))

	out, err := s.repo.GetAnswerDistribution(s.ctx, &GetAnswerDistributionInput{})
	s.Require().NoError(err)

	s.InDelta(50.0, out.CumulativeTruePct, 0.001)
	s.InDelta(50.0, out.CumulativeFalsePct, 0.001)
	s.InDelta(0.0, out.CurrentGameTruePct, 0.001)
	s.InDelta(100.0, out.CurrentGameFalsePct, 0.001)
}

func (s *MemoryRepositoryTestSuite) TestNilInputsAreRejected() {
	s.ErrorIs(s.repo.RecordParticipation(s.ctx, nil), ErrNilInput)
	s.ErrorIs(s.repo.RecordWin(s.ctx, nil), ErrNilInput)
	s.ErrorIs(s.repo.RecordQuestionServed(s.ctx, nil), ErrNilInput)
	s.ErrorIs(s.repo.ResetCurrentGame(s.ctx, nil), ErrNilInput)

	_, err := s.repo.GetMostActive(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}
