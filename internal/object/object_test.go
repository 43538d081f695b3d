package object

import (
	"testing"
	"time"

	"github.com/tomz197/snake/internal/physics"
)

// scriptedRand replays fixed values; exhausted queues yield zero.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

var testGrid = NewGrid(800, 600, 20)

func TestGridRandomCellInBounds(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 2000; i++ {
		p := testGrid.RandomCell(rng)
		if !testGrid.Contains(p) {
			t.Fatalf("RandomCell produced out-of-bounds %+v", p)
		}
		if p.X%testGrid.Cell != 0 || p.Y%testGrid.Cell != 0 {
			t.Fatalf("RandomCell produced unaligned %+v", p)
		}
	}
}

func TestGridCenter(t *testing.T) {
	if c := testGrid.Center(); c != (physics.Point{X: 400, Y: 300}) {
		t.Errorf("Center = %+v, want (400,300)", c)
	}
	odd := NewGrid(810, 610, 20)
	if c := odd.Center(); c != (physics.Point{X: 400, Y: 300}) {
		t.Errorf("Center of odd grid = %+v, want (400,300)", c)
	}
}

func TestNewGridPanicsOnInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero cell size")
		}
	}()
	NewGrid(800, 600, 0)
}

func TestSnakeMovesOneCell(t *testing.T) {
	s := NewSnake(testGrid.Center())
	if s.Moving() {
		t.Fatal("new snake should be stationary")
	}
	if !s.Steer(physics.Right) {
		t.Fatal("steer right from rest rejected")
	}
	s.ApplySteer()
	s.Advance(s.NextHead(testGrid))

	if got := s.Head(); got != (physics.Point{X: 420, Y: 300}) {
		t.Errorf("head = %+v, want (420,300)", got)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(testGrid.Center())
	s.Steer(physics.Right)
	s.ApplySteer()

	if s.Steer(physics.Left) {
		t.Error("reversal accepted")
	}
	s.ApplySteer()
	if s.Dir != physics.Right {
		t.Errorf("dir = %v, want right", s.Dir)
	}

	// A rejected reversal keeps an earlier valid request.
	s.Steer(physics.Up)
	s.Steer(physics.Left)
	if s.Pending() != physics.Up {
		t.Errorf("pending = %v, want up", s.Pending())
	}
}

func TestSnakeAdvanceKeepsTargetLength(t *testing.T) {
	s := NewSnake(physics.Point{X: 0, Y: 0})
	s.Steer(physics.Right)
	s.ApplySteer()
	s.Grow()
	s.Grow()

	for i := 0; i < 10; i++ {
		s.Advance(s.NextHead(testGrid))
		if s.Len() > s.Target {
			t.Fatalf("step %d: len %d exceeds target %d", i, s.Len(), s.Target)
		}
	}
	if s.Len() != 3 {
		t.Errorf("len = %d, want 3", s.Len())
	}
}

func TestSnakeWrapsAtEdges(t *testing.T) {
	s := NewSnake(physics.Point{X: 780, Y: 0})
	s.Steer(physics.Right)
	s.ApplySteer()
	s.Advance(s.NextHead(testGrid))
	if got := s.Head(); got != (physics.Point{X: 0, Y: 0}) {
		t.Errorf("right wrap head = %+v, want (0,0)", got)
	}

	s.Steer(physics.Up)
	s.ApplySteer()
	s.Advance(s.NextHead(testGrid))
	if got := s.Head(); got != (physics.Point{X: 0, Y: 580}) {
		t.Errorf("up wrap head = %+v, want (0,580)", got)
	}
}

func TestSnakeHitsSelf(t *testing.T) {
	s := &Snake{
		Segments: []physics.Point{{X: 0}, {X: 20}, {X: 20, Y: 20}, {X: 0, Y: 20}, {X: 0}},
		Target:   5,
	}
	if !s.HitsSelf() {
		t.Error("expected self hit")
	}
	s.Segments = s.Segments[1:]
	if s.HitsSelf() {
		t.Error("unexpected self hit")
	}
}

func TestSnakeAdvancePanicsOnBadTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero target length")
		}
	}()
	s := NewSnake(physics.Point{})
	s.Target = 0
	s.Advance(physics.Point{X: 20})
}

func TestFoodRelocateMoves(t *testing.T) {
	f := &Food{Pos: physics.Point{X: 100, Y: 100}}
	// First draw repeats the current cell, second lands elsewhere.
	rng := &scriptedRand{ints: []int{5, 5, 6, 5}}
	f.Relocate(testGrid, rng)
	if f.Pos != (physics.Point{X: 120, Y: 100}) {
		t.Errorf("food = %+v, want (120,100)", f.Pos)
	}
}

func TestFoodEatenWithinOneCell(t *testing.T) {
	f := &Food{Pos: physics.Point{X: 100, Y: 100}}
	if !f.EatenBy(physics.Point{X: 100, Y: 100}, 20) {
		t.Error("head on food not eaten")
	}
	if f.EatenBy(physics.Point{X: 120, Y: 100}, 20) {
		t.Error("adjacent head ate food")
	}
}

func TestGenerateObstacles(t *testing.T) {
	rng := NewRand(3)
	obs := GenerateObstacles(testGrid, rng, ObstacleCount)
	if len(obs) != ObstacleCount {
		t.Fatalf("got %d obstacles, want %d", len(obs), ObstacleCount)
	}
	for _, o := range obs {
		if !testGrid.Contains(o) {
			t.Errorf("obstacle %+v out of bounds", o)
		}
	}
	if !HitsObstacle(obs[0], obs, 20) {
		t.Error("head on obstacle not detected")
	}
	if len(GenerateObstacles(testGrid, rng, -1)) != 0 {
		t.Error("negative count should produce no obstacles")
	}
}

func TestPowerUpExpiryWindow(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPowerUp(PowerUpShield, physics.Point{})
	if p.Expired(start.Add(time.Hour)) {
		t.Error("inactive pickup must not expire")
	}
	p.Activate(start)
	if p.Expired(start.Add(PowerUpDuration)) {
		t.Error("expired at exactly the duration")
	}
	if !p.Expired(start.Add(PowerUpDuration + time.Millisecond)) {
		t.Error("not expired after the duration")
	}
	if r := p.Remaining(start.Add(2 * time.Second)); r != 3*time.Second {
		t.Errorf("Remaining = %v, want 3s", r)
	}
}

func TestPowerUpsSpawnAndCollect(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewPowerUps(start)
	far := physics.Point{X: 780, Y: 580}

	// Before the interval nothing is drawn.
	rng := &scriptedRand{floats: []float64{0.0}}
	m.Tick(start.Add(PowerUpSpawnInterval), far, testGrid, rng)
	if m.Pending != nil {
		t.Fatal("spawned before the interval elapsed")
	}

	// A failed draw spawns nothing and keeps the timer.
	rng = &scriptedRand{floats: []float64{0.5}}
	now := start.Add(PowerUpSpawnInterval + time.Second)
	m.Tick(now, far, testGrid, rng)
	if m.Pending != nil {
		t.Fatal("spawned on a failed draw")
	}
	if !m.LastSpawn.Equal(start) {
		t.Error("failed draw reset the spawn timer")
	}

	// A successful draw spawns a shield at (100,100).
	rng = &scriptedRand{floats: []float64{0.1}, ints: []int{int(PowerUpShield), 5, 5}}
	m.Tick(now, far, testGrid, rng)
	if m.Pending == nil || m.Pending.Kind != PowerUpShield {
		t.Fatalf("pending = %+v, want shield", m.Pending)
	}
	if m.Pending.Pos != (physics.Point{X: 100, Y: 100}) {
		t.Fatalf("pending pos = %+v", m.Pending.Pos)
	}

	// Head on the pickup collects it.
	got := m.Tick(now, physics.Point{X: 100, Y: 100}, testGrid, &scriptedRand{})
	if got == nil || got.Kind != PowerUpShield {
		t.Fatalf("collected = %+v, want shield", got)
	}
	if m.Pending != nil || m.ActiveCount() != 1 {
		t.Fatalf("pending=%v active=%d after collect", m.Pending, m.ActiveCount())
	}
	if !m.LastSpawn.Equal(now) {
		t.Error("collect did not reset the spawn timer")
	}
	if !m.Has(PowerUpShield, now) {
		t.Error("shield not active after collect")
	}

	// Purged one tick after the duration.
	m.Tick(now.Add(PowerUpDuration), far, testGrid, &scriptedRand{floats: []float64{1}})
	if m.ActiveCount() != 1 {
		t.Error("purged at exactly the duration")
	}
	m.Tick(now.Add(PowerUpDuration+time.Second/15), far, testGrid, &scriptedRand{floats: []float64{1}})
	if m.ActiveCount() != 0 {
		t.Error("not purged after the duration")
	}
	if m.Has(PowerUpShield, now.Add(PowerUpDuration+time.Second)) {
		t.Error("shield still reported after expiry")
	}
}
