package server

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	clockMocks "github.com/quizwire/quizwire/internal/common/clock/mocks"
	uuidMocks "github.com/quizwire/quizwire/internal/common/uuid/mocks"
	"github.com/quizwire/quizwire/internal/questions"
	"github.com/quizwire/quizwire/internal/repositories/stats"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type AdmissionTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	statsRepo stats.Repository
	server    *Server
	listener  *net.TCPListener
	ctx       context.Context
}

func (s *AdmissionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockClock.EXPECT().Now().DoAndReturn(time.Now).AnyTimes()

	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	next := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		next++
		return fmt.Sprintf("uuid-%d", next)
	}).AnyTimes()

	s.statsRepo = stats.NewMemory()

	srv, err := New(&Config{
		AdmissionTimeout: 250 * time.Millisecond,
		StatsRepo:        s.statsRepo,
		Picker:           questions.New(nil),
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
		Logger:           zap.NewNop(),
	})
	s.Require().NoError(err)
	s.server = srv

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.listener = ln.(*net.TCPListener)
}

func (s *AdmissionTestSuite) TearDownTest() {
	_ = s.listener.Close()
	s.mockCtrl.Finish()
}

func TestAdmissionTestSuite(t *testing.T) {
	suite.Run(t, new(AdmissionTestSuite))
}

// join dials the lobby and performs the name handshake
func (s *AdmissionTestSuite) join(handshake string) net.Conn {
	conn, err := net.Dial("tcp", s.listener.Addr().String())
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	_, err = conn.Write([]byte(handshake))
	s.Require().NoError(err)
	return conn
}

func (s *AdmissionTestSuite) accept() <-chan []*playerConn {
	result := make(chan []*playerConn, 1)
	go func() {
		result <- s.server.acceptPlayers(s.ctx, s.listener)
	}()
	return result
}

func (s *AdmissionTestSuite) wait(result <-chan []*playerConn) []*playerConn {
	select {
	case admitted := <-result:
		return admitted
	case <-time.After(5 * time.Second):
		s.FailNow("admission did not close")
		return nil
	}
}

func (s *AdmissionTestSuite) TestAdmitsPlayersAndClosesAfterIdleWindow() {
	result := s.accept()

	s.join("alice\n")
	s.join("  bob \n")

	admitted := s.wait(result)
	s.Require().Len(admitted, 2)

	names := []string{admitted[0].player.Name, admitted[1].player.Name}
	s.ElementsMatch([]string{"alice", "bob"}, names)

	// Handshake names are trimmed and IDs assigned per player.
	s.NotEqual(admitted[0].player.ID, admitted[1].player.ID)
	s.NotEmpty(admitted[0].player.Addr)

	// Joining the lobby already counts as a played game.
	active, err := s.statsRepo.GetMostActive(s.ctx, &stats.GetMostActiveInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"alice", "bob"}, active.PlayerNames)
	s.Equal(1, active.Games)
}

func (s *AdmissionTestSuite) TestFirstConnectionWaitsBeyondWindow() {
	result := s.accept()

	// Well past the idle window: the lobby must still be open for the
	// first player.
	time.Sleep(400 * time.Millisecond)
	s.join("late\n")

	admitted := s.wait(result)
	s.Require().Len(admitted, 1)
	s.Equal("late", admitted[0].player.Name)
}

func (s *AdmissionTestSuite) TestUnterminatedHandshakeIsRejected() {
	result := s.accept()

	s.join("alice\n")
	// No trailing newline: the handshake never completes and the read
	// deadline rejects the connection.
	s.join("bo")

	admitted := s.wait(result)
	s.Require().Len(admitted, 1)
	s.Equal("alice", admitted[0].player.Name)
}

func (s *AdmissionTestSuite) TestCancelUnblocksEmptyLobby() {
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan []*playerConn, 1)
	go func() {
		result <- s.server.acceptPlayers(ctx, s.listener)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	admitted := s.wait(result)
	s.Empty(admitted)
}
