package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferRoundTrip(t *testing.T) {
	original := &Offer{
		ServerName: "MysticTriviaServer",
		TCPPort:    54321,
	}

	data := EncodeOffer(original)
	require.Len(t, data, OfferSize)

	decoded, err := DecodeOffer(data)
	require.NoError(t, err)

	assert.Equal(t, original.ServerName, decoded.ServerName)
	assert.Equal(t, original.TCPPort, decoded.TCPPort)
}

func TestOfferNameIsSpacePadded(t *testing.T) {
	data := EncodeOffer(&Offer{ServerName: "quiz", TCPPort: 1})

	name := string(data[5 : 5+ServerNameLen])
	assert.Equal(t, "quiz"+strings.Repeat(" ", ServerNameLen-4), name)
}

func TestOfferNameIsTruncatedToFieldWidth(t *testing.T) {
	long := strings.Repeat("x", ServerNameLen+10)

	decoded, err := DecodeOffer(EncodeOffer(&Offer{ServerName: long, TCPPort: 9}))
	require.NoError(t, err)

	assert.Equal(t, long[:ServerNameLen], decoded.ServerName)
}

func TestDecodeOfferRejectsBadCookie(t *testing.T) {
	data := EncodeOffer(&Offer{ServerName: "s", TCPPort: 2})
	data[0] = 0x00

	_, err := DecodeOffer(data)
	assert.ErrorIs(t, err, ErrBadMagicCookie)
}

func TestDecodeOfferRejectsBadMessageType(t *testing.T) {
	data := EncodeOffer(&Offer{ServerName: "s", TCPPort: 2})
	data[4] = 0x3

	_, err := DecodeOffer(data)
	assert.ErrorIs(t, err, ErrBadMessageType)
}

func TestDecodeOfferRejectsShortDatagram(t *testing.T) {
	_, err := DecodeOffer(make([]byte, OfferSize-1))
	assert.ErrorIs(t, err, ErrOfferTooShort)
}
