package domain

// SignalStat holds the upstream counters for one candidate value.
type SignalStat struct {
	Frequency int `json:"frequency"`
	Missing   int `json:"missing"`
}

// Snapshot maps candidate value -> counters. Absent values read as zero.
type Snapshot map[int]SignalStat

func (s Snapshot) Stat(v int) SignalStat {
	if s == nil {
		return SignalStat{}
	}
	return s[v]
}
