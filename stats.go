package tickerx

// Stats is a point-in-time summary of a scheduler.
type Stats struct {
	Frame  uint64 `json:"frame" yaml:"frame"`
	Slots  int    `json:"slots" yaml:"slots"`
	Active int    `json:"active" yaml:"active"`
	Queued int    `json:"queued" yaml:"queued"`
	Paused bool   `json:"paused" yaml:"paused"`
}

// Free returns the number of slots available for reuse.
func (st Stats) Free() int { return st.Slots - st.Active }

// Stats walks the slot array; it is meant for diagnostics, not per-frame use.
func (s *Scheduler) Stats() Stats {
	active := 0
	for i := range s.slots {
		if s.slots[i].active {
			active++
		}
	}
	return Stats{
		Frame:  s.frame,
		Slots:  len(s.slots),
		Active: active,
		Queued: s.current.Len() + s.next.Len(),
		Paused: s.paused,
	}
}
