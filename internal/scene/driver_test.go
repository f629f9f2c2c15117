package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/texscene/internal/engine/geometry"
)

func newDriver(t *testing.T) (*Driver, *observer.ObservedLogs) {
	t.Helper()
	r, d := newRegistry(t, allMapped())
	core, logs := observer.New(zap.InfoLevel)
	drv := NewDriver(r, d.Light, zap.New(core))
	drv.ClearDirty()
	return drv, logs
}

func TestDriverStartsDirty(t *testing.T) {
	r, d := newRegistry(t, allMapped())
	assert.True(t, NewDriver(r, d.Light, nil).Dirty())
}

func TestDriverTickIdle(t *testing.T) {
	drv, _ := newDriver(t)
	drv.Tick()
	assert.False(t, drv.Dirty(), "nothing animates by default")
}

func TestDriverTeapotSpin(t *testing.T) {
	drv, _ := newDriver(t)
	reg := drv.Registry()

	require.False(t, drv.HandleKey('s'))
	require.True(t, drv.Dirty())
	drv.ClearDirty()

	drv.Tick()
	drv.Tick()
	assert.Equal(t, float32(4), reg.Get(geometry.Teapot).Angle)
	assert.Zero(t, reg.Get(geometry.Cylinder).Angle)
	assert.True(t, drv.Dirty())

	for i := 0; i < 178; i++ {
		drv.Tick()
	}
	assert.Equal(t, float32(0), reg.Get(geometry.Teapot).Angle, "wraps at 360")
}

func TestDriverCylinderDrivesDiscs(t *testing.T) {
	drv, _ := newDriver(t)
	reg := drv.Registry()

	drv.HandleKey('c')
	assert.True(t, reg.Get(geometry.Cylinder).Animating)
	assert.True(t, reg.Get(geometry.Discs).Animating)

	drv.Tick()
	assert.Equal(t, float32(1), reg.Get(geometry.Cylinder).Angle)
	assert.Equal(t, float32(1), reg.Get(geometry.Discs).Angle)

	// The discs' own flag does not drive anything.
	reg.Get(geometry.Cylinder).Animating = false
	drv.Tick()
	assert.Equal(t, float32(1), reg.Get(geometry.Discs).Angle)
}

func TestDriverToggleAll(t *testing.T) {
	drv, _ := newDriver(t)
	reg := drv.Registry()

	drv.HandleKey('a')
	for _, o := range reg.All() {
		assert.True(t, o.Animating, o.Shape.String())
	}

	drv.HandleKey('a')
	assert.False(t, reg.AnyAnimating())

	// Any single animating object means the next toggle stops everything.
	drv.HandleKey('s')
	drv.HandleKey('a')
	assert.False(t, reg.AnyAnimating())
}

func TestDriverToggleAllLeavesLight(t *testing.T) {
	drv, _ := newDriver(t)
	x := drv.Light().Position.X()

	drv.HandleKey('a')
	drv.Tick()
	assert.Equal(t, x, drv.Light().Position.X())
}

func TestDriverLight(t *testing.T) {
	drv, _ := newDriver(t)
	start := drv.Light().Position

	drv.HandleKey('l')
	drv.Tick()
	drv.Tick()
	assert.Equal(t, start.X()+2, drv.Light().Position.X())

	drv.HandleKey('i')
	assert.Equal(t, start.Z()-2, drv.Light().Position.Z())
	drv.HandleKey('o')
	drv.HandleKey('o')
	assert.Equal(t, start.Z()+2, drv.Light().Position.Z())

	drv.HandleKey('2')
	assert.Equal(t, start, drv.Light().Position)
}

func TestDriverLightBounces(t *testing.T) {
	drv, _ := newDriver(t)
	drv.HandleKey('l')

	for i := 0; i < 500; i++ {
		drv.Tick()
		x := drv.Light().Position.X()
		require.LessOrEqual(t, x, float32(51))
		require.GreaterOrEqual(t, x, float32(-51))
	}
}

func TestDriverResetAngles(t *testing.T) {
	drv, _ := newDriver(t)
	reg := drv.Registry()
	reg.Get(geometry.Teapot).Angle = 40
	reg.Get(geometry.Cylinder).Angle = 20
	reg.Get(geometry.Discs).Angle = 20
	reg.Get(geometry.Fork).Angle = 10

	drv.HandleKey('1')
	assert.Zero(t, reg.Get(geometry.Teapot).Angle)
	assert.Zero(t, reg.Get(geometry.Cylinder).Angle)
	assert.Zero(t, reg.Get(geometry.Discs).Angle)
	assert.Equal(t, float32(10), reg.Get(geometry.Fork).Angle)
}

func TestDriverKeysAndRedraw(t *testing.T) {
	tests := []struct {
		key   rune
		quit  bool
		dirty bool
	}{
		{KeyEscape, true, false},
		{'q', true, false},
		{'h', false, false},
		{'z', false, false},
		{0, false, false},
		{'r', false, true},
		{'p', false, true},
		{'1', false, true},
		{'2', false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			drv, _ := newDriver(t)
			assert.Equal(t, tt.quit, drv.HandleKey(tt.key))
			assert.Equal(t, tt.dirty, drv.Dirty())
		})
	}
}

func TestDriverLogs(t *testing.T) {
	drv, logs := newDriver(t)

	drv.HandleKey('r')
	drv.HandleKey('p')
	drv.HandleKey('h')
	drv.HandleKey('z')

	assert.Equal(t, 1, logs.FilterMessage("rotation").Len())
	assert.Equal(t, 1, logs.FilterMessage("light position").Len())
	assert.Equal(t, 1, logs.FilterMessage("unknown key ignored").Len())
	assert.Equal(t, 4, logs.Len())
}

func TestDriverTitle(t *testing.T) {
	r, d := newRegistry(t, allMapped())
	assert.Equal(t, "Texture mapping: Cylinder Discs Sphere Cube", NewDriver(r, d.Light, nil).Title())

	var mapped [geometry.NumShapes]bool
	mapped[geometry.Sphere] = true
	r, d = newRegistry(t, mapped)
	assert.Equal(t, "Texture mapping: Sphere", NewDriver(r, d.Light, nil).Title())

	r, d = newRegistry(t, [geometry.NumShapes]bool{})
	assert.Equal(t, "Texture mapping:", NewDriver(r, d.Light, nil).Title())
}

func TestDriverInvalidate(t *testing.T) {
	drv, _ := newDriver(t)
	drv.Invalidate()
	assert.True(t, drv.Dirty())
	assert.Equal(t, mgl32.Vec4{0, 5, 2, 1}, drv.Light().Position)
}

type fakeBuffers struct{ n int32 }

func (f fakeBuffers) Bind(AttribLocator, bool) {}
func (f fakeBuffers) Draw()                     {}
func (f fakeBuffers) ElementCount() int32       { return f.n }

func TestDriverReplace(t *testing.T) {
	drv, _ := newDriver(t)
	teapot := drv.Registry().Get(geometry.Teapot)
	teapot.Buffers = fakeBuffers{n: 42}
	teapot.Angle = 30
	drv.HandleKey('s')
	drv.HandleKey('l')
	drv.Tick()
	drv.Tick()
	drv.Tick()
	drv.ClearDirty()
	x := drv.Light().Position.X()

	next, d := newRegistry(t, allMapped())
	next.Get(geometry.Teapot).Scale = mgl32.Vec3{2, 2, 2}
	d.Light.Position = mgl32.Vec4{1, 1, 1, 1}
	d.Light.Bounce.Delta = 3
	drv.Replace(next, d.Light)

	got := drv.Registry().Get(geometry.Teapot)
	assert.Same(t, next, drv.Registry())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, got.Scale)
	assert.Equal(t, float32(36), got.Angle)
	assert.True(t, got.Animating)
	assert.Equal(t, int32(42), got.Buffers.ElementCount())
	assert.True(t, drv.Dirty())

	assert.Equal(t, x, drv.Light().Position.X(), "light stays where it is")
	drv.HandleKey('2')
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, drv.Light().Position)

	drv.HandleKey('2')
	before := drv.Light().Position.X()
	drv.Tick()
	assert.Equal(t, before+3, drv.Light().Position.X())
}
