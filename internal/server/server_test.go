package server

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/quizwire/quizwire/internal/common/clock"
	"github.com/quizwire/quizwire/internal/common/uuid"
	"github.com/quizwire/quizwire/internal/models"
	"github.com/quizwire/quizwire/internal/protocol"
	questionMocks "github.com/quizwire/quizwire/internal/questions/mocks"
	"github.com/quizwire/quizwire/internal/repositories/stats"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type ServerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockPicker *questionMocks.MockPicker
	server     *Server
	discovery  *net.UDPConn
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPicker = questionMocks.NewMockPicker(s.mockCtrl)

	// The discovery listener doubles as the well-known port: the server
	// broadcasts straight at it over loopback.
	udp, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	s.Require().NoError(err)
	s.discovery = udp

	srv, err := New(&Config{
		Bind:              "127.0.0.1",
		ServerName:        "SuiteServer",
		UDPPort:           udp.LocalAddr().(*net.UDPAddr).Port,
		BroadcastAddr:     "127.0.0.1",
		AdmissionTimeout:  200 * time.Millisecond,
		AnswerTimeout:     150 * time.Millisecond,
		BroadcastInterval: 50 * time.Millisecond,
		StatsRepo:         stats.NewMemory(),
		Picker:            s.mockPicker,
		Clock:             clock.New(),
		UUIDGenerator:     uuid.New(),
		Logger:            zap.NewNop(),
	})
	s.Require().NoError(err)
	s.server = srv
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.discovery.Close()
	s.mockCtrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

// nextOffer waits for a discovery offer and returns the advertised game port
func (s *ServerTestSuite) nextOffer() uint16 {
	s.Require().NoError(s.discovery.SetReadDeadline(time.Now().Add(3 * time.Second)))

	buf := make([]byte, 64)
	n, _, err := s.discovery.ReadFromUDP(buf)
	s.Require().NoError(err)

	offer, err := protocol.DecodeOffer(buf[:n])
	s.Require().NoError(err)
	s.Equal("SuiteServer", offer.ServerName)
	return offer.TCPPort
}

func (s *ServerTestSuite) TestFullGameCycle() {
	s.mockPicker.EXPECT().
		Pick().
		Return(models.Question{Prompt: "loopback?", Answer: true}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.server.Run(ctx)
	}()

	port := s.nextOffer()
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port)))

	alice := s.connect(addr, "alice", []string{"y"})
	bob := s.connect(addr, "bob", []string{"n"})

	for _, c := range []*scriptedClient{alice, bob} {
		select {
		case <-c.done:
		case <-time.After(5 * time.Second):
			s.FailNow("client did not see the game end")
		}
	}

	s.Contains(alice.transcript(), protocol.MarkerFirstQuestion)
	s.Contains(alice.transcript(), "loopback?")
	s.Contains(alice.transcript(), protocol.MarkerWinner)
	s.Contains(bob.transcript(), "alice")

	// The lobby reopens and discovery resumes for the next game.
	s.Eventually(func() bool {
		return s.server.Status() == models.GameStatusLobby
	}, 2*time.Second, 10*time.Millisecond)
	s.nextOffer()

	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		s.FailNow("server did not stop")
	}
}

func (s *ServerTestSuite) TestSolePlayerIsTurnedAway() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- s.server.Run(ctx)
	}()

	port := s.nextOffer()
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port)))

	alice := s.connect(addr, "alice", nil)

	select {
	case <-alice.done:
	case <-time.After(5 * time.Second):
		s.FailNow("client was not turned away")
	}

	s.Contains(alice.transcript(), protocol.MarkerCancelled)
}

// connect joins a running game as a scripted player
func (s *ServerTestSuite) connect(addr, name string, answers []string) *scriptedClient {
	conn, err := net.Dial("tcp", addr)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	_, err = conn.Write([]byte(name + "\n"))
	s.Require().NoError(err)

	return runScript(conn, answers)
}
