package session

import "fmt"

// Identifies a per-attachment receiver of join requests.  Valid bound
// ports range from 1 to 0xFFFF.
type Port uint16

// Asks the bus to choose any available port when binding.
const PortAny Port = 0

func (p Port) String() string {
	if p == PortAny {
		return "Port(any)"
	}
	return fmt.Sprintf("Port(%v)", uint16(p))
}

// Uniquely identifies a session instance.
type ID uint32
