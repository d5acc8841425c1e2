package session

import (
	"fmt"
	"strings"

	"github.com/pkopriv2/rendezvous/utils"
)

// The set of link technologies acceptable to a session.  The bit
// assignment belongs to the transport layer.  Compatibility and ordering
// only intersect masks and compare their magnitude.
type TransportMask uint16

// Reference assignment.  Weights increase as locality decreases.
const (
	TransportNone      TransportMask = 0x0000
	TransportLocal     TransportMask = 0x0001
	TransportBluetooth TransportMask = 0x0002
	TransportWLAN      TransportMask = 0x0004
	TransportWWAN      TransportMask = 0x0008
	TransportLAN       TransportMask = 0x0010
	TransportAny       TransportMask = 0xFFFF
)

var transportNames = map[TransportMask]string{
	TransportLocal:     "Local",
	TransportBluetooth: "Bluetooth",
	TransportWLAN:      "WLAN",
	TransportWWAN:      "WWAN",
	TransportLAN:       "LAN",
}

// Returns true if the mask shares a bit with other.
func (t TransportMask) Has(other TransportMask) bool {
	return utils.BitMask(t).Matches(utils.BitMask(other))
}

func (t TransportMask) String() string {
	switch t {
	case TransportNone:
		return "None"
	case TransportAny:
		return "Any"
	}

	names := make([]string, 0, 4)
	for _, bit := range utils.SplitMask(utils.BitMask(t)) {
		name, ok := transportNames[TransportMask(bit)]
		if !ok {
			name = fmt.Sprintf("0x%04x", uint16(bit))
		}
		names = append(names, name)
	}
	return strings.Join(names, "|")
}
