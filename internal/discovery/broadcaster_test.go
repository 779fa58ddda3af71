package discovery

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/quizwire/quizwire/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBroadcasterValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{TCPPort: 1})
	assert.ErrorIs(t, err, ErrNilLogger)

	_, err = New(&Config{Logger: zap.NewNop()})
	assert.ErrorIs(t, err, ErrNoTCPPort)

	_, err = New(&Config{Logger: zap.NewNop(), TCPPort: 1, BroadcastAddr: "not-an-ip"})
	assert.Error(t, err)
}

func TestBroadcasterSendsDecodableOffers(t *testing.T) {
	// Receive on loopback instead of the broadcast address.
	listener, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer listener.Close()

	port := listener.LocalAddr().(*net.UDPAddr).Port

	b, err := New(&Config{
		ServerName:    "TestTriviaServer",
		TCPPort:       4242,
		UDPPort:       port,
		BroadcastAddr: "127.0.0.1",
		Interval:      20 * time.Millisecond,
		Logger:        zap.NewNop(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	n, _, err := listener.ReadFromUDP(buf)
	require.NoError(t, err)

	offer, err := protocol.DecodeOffer(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, "TestTriviaServer", offer.ServerName)
	assert.Equal(t, uint16(4242), offer.TCPPort)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("broadcaster did not stop on context cancel")
	}
}
