package session

import (
	"cmp"
	"fmt"

	"github.com/pkopriv2/rendezvous/utils"
)

// Traffic type carried by a session.  Exactly one bit is ever set.
type TrafficType uint8

const (
	TrafficMessages      TrafficType = 0x01
	TrafficRawUnreliable TrafficType = 0x02
	TrafficRawReliable   TrafficType = 0x04
)

const trafficMask = TrafficMessages | TrafficRawUnreliable | TrafficRawReliable

// Returns true if exactly one known traffic bit is set.
func (t TrafficType) Valid() bool {
	return utils.BitMask(t).IsSingle() && t&^trafficMask == 0
}

func (t TrafficType) String() string {
	switch t {
	default:
		return fmt.Sprintf("Traffic(0x%02x)", uint8(t))
	case TrafficMessages:
		return "Messages"
	case TrafficRawUnreliable:
		return "RawUnreliable"
	case TrafficRawReliable:
		return "RawReliable"
	}
}

// Physical locality constraint.  ProximityAny has every bit set and
// therefore intersects every non-empty proximity.
type Proximity uint8

const (
	ProximityPhysical Proximity = 0x01
	ProximityNetwork  Proximity = 0x02
	ProximityAny      Proximity = 0xFF
)

func (p Proximity) String() string {
	switch p {
	default:
		return fmt.Sprintf("Proximity(0x%02x)", uint8(p))
	case ProximityPhysical:
		return "Physical"
	case ProximityNetwork:
		return "Network"
	case ProximityAny:
		return "Any"
	}
}

// Opts describes the characteristics of a session.  An Opts is an
// immutable value: it is copied freely and every modifier returns
// a new value.  The zero value has no traffic type and empty masks,
// so it is incompatible with everything.
type Opts struct {
	traffic    TrafficType
	multipoint bool
	proximity  Proximity
	transports TransportMask
}

// Builds an options value.  No validation is performed.  Empty
// proximity or transport masks are legal but never compatible.
func NewOpts(traffic TrafficType, multipoint bool, proximity Proximity, transports TransportMask) Opts {
	return Opts{traffic, multipoint, proximity, transports}
}

// The most permissive point-to-point message session.
func DefaultOpts() Opts {
	return Opts{TrafficMessages, false, ProximityAny, TransportAny}
}

func (o Opts) Traffic() TrafficType {
	return o.traffic
}

func (o Opts) Multipoint() bool {
	return o.multipoint
}

func (o Opts) Proximity() Proximity {
	return o.proximity
}

func (o Opts) Transports() TransportMask {
	return o.transports
}

func (o Opts) WithTraffic(t TrafficType) Opts {
	o.traffic = t
	return o
}

func (o Opts) WithMultipoint(m bool) Opts {
	o.multipoint = m
	return o
}

func (o Opts) WithProximity(p Proximity) Opts {
	o.proximity = p
	return o
}

func (o Opts) WithTransports(t TransportMask) Opts {
	o.transports = t
	return o
}

// Returns true if a session described by o can be joined by a peer
// offering other.  Traffic types are tested with a bitwise AND, which is
// equivalent to equality while each value carries a single bit.
// Multipoint does not take part.
func (o Opts) IsCompatible(other Opts) bool {
	return IsCompatible(o, other)
}

func IsCompatible(a, b Opts) bool {
	if !utils.BitMask(a.transports).Matches(utils.BitMask(b.transports)) {
		return false
	}

	if !utils.BitMask(a.traffic).Matches(utils.BitMask(b.traffic)) {
		return false
	}

	return utils.BitMask(a.proximity).Matches(utils.BitMask(b.proximity))
}

// Returns the options two compatible parties would share: the traffic
// and multipoint settings of a with both masks narrowed to their common
// bits.  Incompatible inputs produce a value that is incompatible with
// everything.
func Intersect(a, b Opts) Opts {
	return Opts{
		traffic:    TrafficType(utils.BitMask(a.traffic).Intersect(utils.BitMask(b.traffic))),
		multipoint: a.multipoint,
		proximity:  Proximity(utils.BitMask(a.proximity).Intersect(utils.BitMask(b.proximity))),
		transports: TransportMask(utils.BitMask(a.transports).Intersect(utils.BitMask(b.transports))),
	}
}

// Field-wise equality, including multipoint.
func (o Opts) Equals(other Opts) bool {
	return o == other
}

// Canonical total order: traffic, then multipoint (false first), then
// proximity, then transports, each ascending.  The order carries no notion
// of preference. It only exists so that independent peers sorting the same
// options agree on the result.
func Compare(a, b Opts) int {
	if c := cmp.Compare(a.traffic, b.traffic); c != 0 {
		return c
	}
	if c := compareBool(a.multipoint, b.multipoint); c != 0 {
		return c
	}
	if c := cmp.Compare(a.proximity, b.proximity); c != 0 {
		return c
	}
	return cmp.Compare(a.transports, b.transports)
}

func (o Opts) Compare(other Opts) int {
	return Compare(o, other)
}

func (o Opts) Less(other Opts) bool {
	return Compare(o, other) < 0
}

// Packs every field into a single key.  Distinct options produce distinct
// hashes and the numeric order of the hash matches Compare.
func (o Opts) Hash() uint64 {
	var mp uint64
	if o.multipoint {
		mp = 1
	}

	return uint64(o.traffic)<<32 | mp<<24 | uint64(o.proximity)<<16 | uint64(o.transports)
}

func (o Opts) String() string {
	return fmt.Sprintf("Opts(traffic=%v, multipoint=%v, proximity=%v, transports=%v)",
		o.traffic, o.multipoint, o.proximity, o.transports)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
