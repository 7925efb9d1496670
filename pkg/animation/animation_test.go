package animation

import (
	"testing"
	"time"

	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/stretchr/testify/assert"
)

func TestMediaTime_FollowsClock(t *testing.T) {
	clk := NewStepClock()
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })

	start := MediaTime()
	clk.Advance(310 * time.Millisecond)

	assert.Equal(t, 310*time.Millisecond, MediaTime()-start)
	assert.True(t, Now().Equal(clk.Now()))
}

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":    Linear,
		"ease":      Ease,
		"easeIn":    EaseIn,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
	}
	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, curve(0))
			assert.Equal(t, 1.0, curve(1))
			assert.Equal(t, 0.0, curve(-0.5))
			assert.Equal(t, 1.0, curve(1.5))
		})
	}
}

func TestCurves_Shape(t *testing.T) {
	assert.Less(t, EaseIn(0.5), 0.5, "ease-in lags linear progress")
	assert.Greater(t, EaseOut(0.5), 0.5, "ease-out leads linear progress")
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-4, "ease-in-out is symmetric")
}

func TestCurves_Monotonic(t *testing.T) {
	for _, curve := range []func(float64) float64{EaseIn, EaseOut, EaseInOut, Ease} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			assert.GreaterOrEqual(t, v+1e-6, prev)
			prev = v
		}
	}
}

func TestLerpColor(t *testing.T) {
	a := graphics.RGB(0, 0, 0)
	b := graphics.RGB(200, 100, 50)

	assert.Equal(t, a, LerpColor(a, b, 0))
	assert.Equal(t, b, LerpColor(a, b, 1))
	assert.Equal(t, graphics.RGB(100, 50, 25), LerpColor(a, b, 0.5))
}

func TestLerpSize(t *testing.T) {
	got := LerpSize(graphics.Square(10), graphics.Square(11), 0.5)
	assert.InDelta(t, 10.5, got.Width, 1e-9)
	assert.InDelta(t, 10.5, got.Height, 1e-9)
}

func TestStepClock(t *testing.T) {
	clk := NewStepClock()
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })

	assert.Equal(t, time.Duration(0), MediaTime())

	clk.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, MediaTime())

	clk.SetMediaTime(2 * time.Second)
	assert.Equal(t, 2*time.Second, MediaTime())
}
