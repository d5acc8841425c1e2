package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportMask_Has(t *testing.T) {
	mask := TransportLocal | TransportWLAN
	assert.True(t, mask.Has(TransportWLAN))
	assert.True(t, mask.Has(TransportAny))
	assert.False(t, mask.Has(TransportLAN))
	assert.False(t, mask.Has(TransportNone))
}

func TestTransportMask_String(t *testing.T) {
	assert.Equal(t, "None", TransportNone.String())
	assert.Equal(t, "Any", TransportAny.String())
	assert.Equal(t, "Local", TransportLocal.String())
	assert.Equal(t, "Local|WLAN|LAN", (TransportLocal | TransportWLAN | TransportLAN).String())
	assert.Equal(t, "Bluetooth|0x0100", (TransportBluetooth | 0x0100).String())
}

func TestTransportMask_Order(t *testing.T) {
	assert.True(t, TransportLocal < TransportBluetooth)
	assert.True(t, TransportBluetooth < TransportWLAN)
	assert.True(t, TransportWLAN < TransportWWAN)
	assert.True(t, TransportWWAN < TransportAny)
}

func TestPort_String(t *testing.T) {
	assert.Equal(t, "Port(any)", PortAny.String())
	assert.Equal(t, "Port(42)", Port(42).String())
}
