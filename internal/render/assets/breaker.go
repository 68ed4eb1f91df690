package assets

import "sync"

// breaker tracks consecutive fetch failures per image host:
// - open the circuit after N failures; while open, skip dialing the host
// - close again after M consecutive successes once probes resume
//
// A dead CDN then costs one timeout, not one timeout per element.
type breaker struct {
	mu               sync.Mutex
	states           map[string]*hostState
	failureThreshold int
	successThreshold int
}

type hostState struct {
	open         bool
	failureCount int
	successCount int
	skipped      int
}

// probeEvery lets one request through per this many skipped attempts while
// the circuit is open, so a recovered host closes the circuit again.
const probeEvery = 10

func newBreaker() *breaker {
	return &breaker{
		states:           make(map[string]*hostState),
		failureThreshold: 3,
		successThreshold: 2,
	}
}

func (b *breaker) allow(host string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.states[host]
	if !ok || !s.open {
		return true
	}
	s.skipped++
	if s.skipped >= probeEvery {
		s.skipped = 0
		return true
	}
	return false
}

func (b *breaker) recordFailure(host string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.state(host)
	s.failureCount++
	s.successCount = 0
	if s.failureCount >= b.failureThreshold {
		s.open = true
	}
}

func (b *breaker) recordSuccess(host string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.state(host)
	if s.open {
		s.successCount++
		if s.successCount >= b.successThreshold {
			*s = hostState{}
		}
		return
	}
	s.failureCount = 0
}

func (b *breaker) state(host string) *hostState {
	s, ok := b.states[host]
	if !ok {
		s = &hostState{}
		b.states[host] = s
	}
	return s
}
