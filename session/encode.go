package session

import (
	"math"

	"github.com/pkg/errors"
	"github.com/pkopriv2/rendezvous/scribe"
)

func (o Opts) Write(w scribe.Writer) {
	w.WriteInt("traffic", int(o.traffic))
	w.WriteBool("multipoint", o.multipoint)
	w.WriteInt("proximity", int(o.proximity))
	w.WriteInt("transports", int(o.transports))
}

// Reads options written with Opts#Write.  Values received from a remote
// host are range checked here: the traffic tag must name exactly one
// traffic type and the masks must fit their widths.  Empty masks are
// accepted.
func ReadOpts(r scribe.Reader) (Opts, error) {
	var traffic, proximity, transports int
	var multipoint bool

	if err := r.ReadInt("traffic", &traffic); err != nil {
		return Opts{}, err
	}
	if err := r.ReadBool("multipoint", &multipoint); err != nil {
		return Opts{}, err
	}
	if err := r.ReadInt("proximity", &proximity); err != nil {
		return Opts{}, err
	}
	if err := r.ReadInt("transports", &transports); err != nil {
		return Opts{}, err
	}

	if traffic < 0 || traffic > math.MaxUint8 || !TrafficType(traffic).Valid() {
		return Opts{}, errors.Wrapf(ErrInvalidTraffic, "Unknown traffic type [%v]", traffic)
	}
	if proximity < 0 || proximity > math.MaxUint8 {
		return Opts{}, errors.Wrapf(ErrInvalidProximity, "Proximity out of range [%v]", proximity)
	}
	if transports < 0 || transports > math.MaxUint16 {
		return Opts{}, errors.Wrapf(ErrInvalidTransports, "Transports out of range [%v]", transports)
	}

	return NewOpts(TrafficType(traffic), multipoint, Proximity(proximity), TransportMask(transports)), nil
}

func ParseOpts(r scribe.Reader) (interface{}, error) {
	return ReadOpts(r)
}
