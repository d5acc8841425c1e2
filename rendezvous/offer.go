package rendezvous

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/pkopriv2/rendezvous/scribe"
	"github.com/pkopriv2/rendezvous/session"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrInvalidPort = errors.New("RENDEZVOUS:INVALID_PORT")
)

// Offers are encoded deterministically so that peers advertising the
// same offer produce identical bytes.  Nested scribe objects must decode
// as string keyed maps.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("rendezvous: cbor encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic("rendezvous: cbor decoder initialization failed: " + err.Error())
	}
}

// An offer is a session configuration advertised by a remote endpoint
// on one of its bound ports.
type Offer struct {
	Endpoint uuid.UUID
	Name     string
	Port     session.Port
	Opts     session.Opts
}

func NewOffer(endpoint uuid.UUID, name string, port session.Port, opts session.Opts) Offer {
	return Offer{endpoint, name, port, opts}
}

func (o Offer) String() string {
	return fmt.Sprintf("Offer(%v@%v:%v, %v)", o.Name, o.Endpoint, uint16(o.Port), o.Opts)
}

func (o Offer) Write(w scribe.Writer) {
	w.WriteUUID("endpoint", o.Endpoint)
	w.WriteString("name", o.Name)
	w.WriteInt("port", int(o.Port))
	w.WriteMessage("opts", o.Opts)
}

func ReadOffer(r scribe.Reader) (Offer, error) {
	var ret Offer
	var port int
	var opts scribe.Message

	if err := r.ReadUUID("endpoint", &ret.Endpoint); err != nil {
		return Offer{}, err
	}
	if err := r.ReadString("name", &ret.Name); err != nil {
		return Offer{}, err
	}
	if err := r.ReadInt("port", &port); err != nil {
		return Offer{}, err
	}
	if err := r.ReadMessage("opts", &opts); err != nil {
		return Offer{}, err
	}

	// offers are only ever made on bound ports.
	if port <= int(session.PortAny) || port > math.MaxUint16 {
		return Offer{}, errors.Wrapf(ErrInvalidPort, "Port out of range [%v]", port)
	}
	ret.Port = session.Port(port)

	var err error
	if ret.Opts, err = session.ReadOpts(opts); err != nil {
		return Offer{}, errors.Wrapf(err, "Error reading opts of offer [%v]", ret.Name)
	}

	return ret, nil
}

func ParseOffer(r scribe.Reader) (interface{}, error) {
	return ReadOffer(r)
}

// Reads every offer in the list stored under field.
func ReadOffers(r scribe.Reader, field string) ([]Offer, error) {
	var msgs []scribe.Message
	if err := r.ReadMessages(field, &msgs); err != nil {
		return nil, err
	}

	var ret []Offer
	if err := scribe.ParseMessages(msgs, &ret, ParseOffer); err != nil {
		return nil, errors.Wrapf(err, "Error reading offers [%v]", field)
	}
	return ret, nil
}

// Writes offers onto a stream as a sequence of cbor items.
type OfferEncoder struct {
	enc *cbor.Encoder
}

func NewOfferEncoder(w io.Writer) *OfferEncoder {
	return &OfferEncoder{cborEncMode.NewEncoder(w)}
}

func (e *OfferEncoder) Encode(o Offer) error {
	return scribe.Encode(e.enc, o)
}

// Reads offers written by an OfferEncoder.  The underlying decoder
// buffers ahead of the current item, so a single decoder must be kept
// for the life of the stream.
type OfferDecoder struct {
	dec *cbor.Decoder
}

func NewOfferDecoder(r io.Reader) *OfferDecoder {
	return &OfferDecoder{cborDecMode.NewDecoder(r)}
}

func (d *OfferDecoder) Decode() (Offer, error) {
	msg, err := scribe.Decode(d.dec)
	if err != nil {
		return Offer{}, err
	}

	return ReadOffer(msg)
}

// Total order over offers.  Offers are ranked by their options first, so
// the canonical session order decides which offer is preferred.  The
// remaining fields only break ties between distinct endpoints advertising
// identical options.
func CompareOffers(a, b Offer) int {
	if c := session.Compare(a.Opts, b.Opts); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Port, b.Port); c != 0 {
		return c
	}
	return bytes.Compare(a.Endpoint.Bytes(), b.Endpoint.Bytes())
}

func offerComparator(a, b interface{}) int {
	return CompareOffers(a.(Offer), b.(Offer))
}
