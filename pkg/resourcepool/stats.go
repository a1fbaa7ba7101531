package resourcepool

type Stats struct {
	Key             Key    `json:"key"`
	InitialSize     int    `json:"initialSize"`
	PreferredSize   int    `json:"preferredSize"`
	MaximumSize     int    `json:"maximumSize"`
	Size            int    `json:"size"`
	Idle            int    `json:"idle"`
	Busy            int    `json:"busy"`
	Pending         int    `json:"pending"`
	Waiting         int    `json:"waiting"`
	Closed          bool   `json:"closed"`
	Created         uint64 `json:"created"`
	Destroyed       uint64 `json:"destroyed"`
	Acquired        uint64 `json:"acquired"`
	Timeouts        uint64 `json:"timeouts"`
	FactoryFailures uint64 `json:"factoryFailures"`
}

func (p *ResourcePool) Stats() Stats {
	p.mx.Lock()
	defer p.mx.Unlock()

	s := Stats{
		Key:             p.key,
		InitialSize:     p.initialSize,
		PreferredSize:   p.preferredSize,
		MaximumSize:     p.maximumSize,
		Size:            len(p.entries),
		Pending:         p.pending,
		Waiting:         p.waiting,
		Closed:          p.closed,
		Created:         p.created,
		Destroyed:       p.destroyed,
		Acquired:        p.acquired,
		Timeouts:        p.timeouts,
		FactoryFailures: p.factoryFailures,
	}

	for _, r := range p.entries {
		if r.state == Idle {
			s.Idle++
		} else {
			s.Busy++
		}
	}

	return s
}
