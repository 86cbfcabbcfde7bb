package models

// TransportMode is a single mode of urban transport.
type TransportMode string

const (
	ModeBus   TransportMode = "bus"
	ModeMetro TransportMode = "metro"
	ModeAuto  TransportMode = "auto"
	ModeTaxi  TransportMode = "taxi"
)

func (m TransportMode) Valid() bool {
	switch m {
	case ModeBus, ModeMetro, ModeAuto, ModeTaxi:
		return true
	}
	return false
}

// TicketModes are the modes tickets can be issued for.
func (m TransportMode) Ticketable() bool {
	return m == ModeBus || m == ModeMetro
}
