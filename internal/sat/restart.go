package sat

// RestartPolicy emits a Luby-sequence-times-fixed-factor restart schedule
// (§4.6), ported from original_source/restart_luby.hh composed with
// restart_multiply.hh: the i-th interval is f*luby(i) conflicts, where f
// is the configured base (400 by default, per §4.6).
type RestartPolicy struct {
	base    int
	counter int
	value   int
	max     int
}

// NewRestartPolicy returns a restart policy scaling the Luby sequence by
// base.
func NewRestartPolicy(base int) *RestartPolicy {
	return &RestartPolicy{
		base:  base,
		value: 1,
		max:   luby(1),
	}
}

// Tick records one conflict and reports whether a restart is due.
func (r *RestartPolicy) Tick() bool {
	r.counter++
	if r.counter < r.max*r.base {
		return false
	}
	r.counter = 0
	r.value++
	r.max = luby(r.value)
	return true
}

// luby computes the standard Luby sequence: luby(2^k-1) = 2^(k-1), and
// otherwise luby(i) = luby(i - 2^(k-1) + 1) for the k with
// 2^(k-1) <= i < 2^k - 1. Matches 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,... (§8).
func luby(i int) int {
	for k := 1; k < 32; k++ {
		if i == (1<<uint(k))-1 {
			return 1 << uint(k-1)
		}
	}
	for k := 1; ; k++ {
		lo := 1 << uint(k-1)
		hi := (1 << uint(k)) - 1
		if lo <= i && i < hi {
			return luby(i - lo + 1)
		}
	}
}
