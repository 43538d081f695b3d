package object

import (
	"time"

	"github.com/tomz197/snake/internal/physics"
)

// PowerUpKind identifies the effect granted by a pickup.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota // Inert: tick rate is not changed
	PowerUpDoubleScore
	PowerUpShield
	powerUpKinds
)

// String returns the display name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "Speed"
	case PowerUpDoubleScore:
		return "Double Score"
	case PowerUpShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// Power-up tuning.
const (
	PowerUpDuration      = 5 * time.Second
	PowerUpSpawnInterval = 10 * time.Second
	PowerUpSpawnChance   = 0.3
)

// PowerUp is a pickup on the field or, once collected, a timed effect.
type PowerUp struct {
	Kind        PowerUpKind
	Pos         physics.Point
	Duration    time.Duration
	ActivatedAt time.Time
	Active      bool
}

// NewPowerUp creates an uncollected pickup.
func NewPowerUp(kind PowerUpKind, pos physics.Point) PowerUp {
	return PowerUp{Kind: kind, Pos: pos, Duration: PowerUpDuration}
}

// Activate starts the effect timer.
func (p *PowerUp) Activate(now time.Time) {
	p.Active = true
	p.ActivatedAt = now
}

// Expired reports whether an active effect has outlived its duration.
// Pickups that were never activated do not expire.
func (p PowerUp) Expired(now time.Time) bool {
	if !p.Active {
		return false
	}
	return now.Sub(p.ActivatedAt) > p.Duration
}

// Remaining returns the time left on an active effect.
func (p PowerUp) Remaining(now time.Time) time.Duration {
	if !p.Active {
		return p.Duration
	}
	left := p.Duration - now.Sub(p.ActivatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// PowerUps tracks the single pending pickup and the set of active effects.
type PowerUps struct {
	Pending   *PowerUp
	Active    []PowerUp
	LastSpawn time.Time // Reset only when a pickup is collected
}

// NewPowerUps creates an empty manager whose spawn timer starts at now.
func NewPowerUps(now time.Time) *PowerUps {
	return &PowerUps{LastSpawn: now}
}

// Tick purges expired effects, possibly spawns a pickup and collects the
// pending one if head overlaps it. It returns the collected pickup, if any.
func (m *PowerUps) Tick(now time.Time, head physics.Point, g Grid, rng Rand) *PowerUp {
	kept := m.Active[:0]
	for _, p := range m.Active {
		if !p.Expired(now) {
			kept = append(kept, p)
		}
	}
	m.Active = kept

	if m.Pending == nil && now.Sub(m.LastSpawn) > PowerUpSpawnInterval {
		if rng.Float64() < PowerUpSpawnChance {
			kind := PowerUpKind(rng.Intn(int(powerUpKinds)))
			p := NewPowerUp(kind, g.RandomCell(rng))
			m.Pending = &p
		}
	}

	if m.Pending != nil && physics.Overlaps(head, m.Pending.Pos, g.Cell) {
		collected := *m.Pending
		collected.Activate(now)
		m.Active = append(m.Active, collected)
		m.Pending = nil
		m.LastSpawn = now
		return &collected
	}
	return nil
}

// Has reports whether an unexpired effect of kind is active.
func (m *PowerUps) Has(kind PowerUpKind, now time.Time) bool {
	for _, p := range m.Active {
		if p.Kind == kind && p.Active && !p.Expired(now) {
			return true
		}
	}
	return false
}

// ActiveCount returns the number of collected effects still held.
func (m *PowerUps) ActiveCount() int {
	return len(m.Active)
}
