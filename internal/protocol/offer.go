package protocol

import (
	"encoding/binary"
	"errors"
	"strings"
)

const (
	// MagicCookie opens every offer datagram
	MagicCookie uint32 = 0xABCDDCBA

	// MessageTypeOffer identifies a server offer
	MessageTypeOffer byte = 0x2

	// ServerNameLen is the fixed width of the server name field
	ServerNameLen = 32

	// OfferSize is the exact length of an offer datagram:
	// cookie (4) + type (1) + name (32) + port (2)
	OfferSize = 4 + 1 + ServerNameLen + 2

	// DefaultUDPPort is the well-known discovery port
	DefaultUDPPort = 13117
)

// Offer datagram decoding errors. A receiver treats any of these as
// "not a server offer" and keeps listening.
var (
	ErrOfferTooShort  = errors.New("offer datagram too short")
	ErrBadMagicCookie = errors.New("bad magic cookie")
	ErrBadMessageType = errors.New("unexpected message type")
)

// Offer is a server advertisement broadcast while the lobby is open
type Offer struct {
	// ServerName is the advertised display name, at most ServerNameLen bytes
	ServerName string

	// TCPPort is the dynamically chosen game port
	TCPPort uint16
}

// EncodeOffer serializes an offer into its fixed network-byte-order layout.
// Names longer than the field are truncated; shorter names are space-padded.
func EncodeOffer(offer *Offer) []byte {
	buf := make([]byte, OfferSize)

	binary.BigEndian.PutUint32(buf[0:4], MagicCookie)
	buf[4] = MessageTypeOffer

	name := offer.ServerName
	if len(name) > ServerNameLen {
		name = name[:ServerNameLen]
	}
	copy(buf[5:5+ServerNameLen], name)
	for i := 5 + len(name); i < 5+ServerNameLen; i++ {
		buf[i] = ' '
	}

	binary.BigEndian.PutUint16(buf[5+ServerNameLen:OfferSize], offer.TCPPort)
	return buf
}

// DecodeOffer parses and validates an offer datagram. The cookie and
// message type are checked before any other field is trusted.
func DecodeOffer(data []byte) (*Offer, error) {
	if len(data) < OfferSize {
		return nil, ErrOfferTooShort
	}

	if binary.BigEndian.Uint32(data[0:4]) != MagicCookie {
		return nil, ErrBadMagicCookie
	}

	if data[4] != MessageTypeOffer {
		return nil, ErrBadMessageType
	}

	return &Offer{
		ServerName: strings.TrimRight(string(data[5:5+ServerNameLen]), " "),
		TCPPort:    binary.BigEndian.Uint16(data[5+ServerNameLen : OfferSize]),
	}, nil
}
