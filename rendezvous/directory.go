package rendezvous

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkopriv2/rendezvous/scribe"
	"github.com/pkopriv2/rendezvous/session"
	uuid "github.com/satori/go.uuid"
)

// The directory tracks the offers currently advertised for a rendezvous
// point.  Offers are kept in canonical order so every reader observes the
// same sequence regardless of arrival order.
type Directory struct {
	lock   sync.RWMutex
	offers *treemap.Map // Offer -> struct{}
}

func NewDirectory() *Directory {
	return &Directory{offers: treemap.NewWith(offerComparator)}
}

// Adds the offer.  Returns false if it was already present.
func (d *Directory) Add(o Offer) bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	if _, ok := d.offers.Get(o); ok {
		return false
	}

	d.offers.Put(o, struct{}{})
	return true
}

// Removes the offer.  Returns false if it was not present.
func (d *Directory) Remove(o Offer) bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	if _, ok := d.offers.Get(o); !ok {
		return false
	}

	d.offers.Remove(o)
	return true
}

// Removes every offer made by the endpoint and returns how many were
// dropped.
func (d *Directory) RemoveEndpoint(id uuid.UUID) int {
	d.lock.Lock()
	defer d.lock.Unlock()

	var num int
	for _, k := range d.offers.Keys() {
		if o := k.(Offer); uuid.Equal(o.Endpoint, id) {
			d.offers.Remove(o)
			num++
		}
	}
	return num
}

// Writes a snapshot of every offer.  See: Merge
func (d *Directory) Write(w scribe.Writer) {
	w.WriteMessages("offers", d.All())
}

// Adds every offer of a snapshot written by Directory#Write and returns
// how many were new.  Nothing is added if the snapshot is malformed.
func (d *Directory) Merge(r scribe.Reader) (int, error) {
	offers, err := ReadOffers(r, "offers")
	if err != nil {
		return 0, err
	}

	var num int
	for _, o := range offers {
		if d.Add(o) {
			num++
		}
	}
	return num, nil
}

func (d *Directory) Size() int {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.offers.Size()
}

// Returns every offer in canonical order.
func (d *Directory) All() []Offer {
	return d.filter(func(Offer) bool { return true })
}

// Returns the offers compatible with the request in canonical order.
func (d *Directory) Match(req session.Opts) []Offer {
	return d.filter(func(o Offer) bool { return req.IsCompatible(o.Opts) })
}

func (d *Directory) filter(fn func(Offer) bool) []Offer {
	d.lock.RLock()
	defer d.lock.RUnlock()

	ret := make([]Offer, 0, d.offers.Size())
	for iter := d.offers.Iterator(); iter.Next(); {
		if o := iter.Key().(Offer); fn(o) {
			ret = append(ret, o)
		}
	}
	return ret
}
