package radio

import (
	"testing"

	drifttest "github.com/go-drift/radiobutton/pkg/testing"
	"github.com/stretchr/testify/require"
)

// useFakeClock installs a fake animation clock for the duration of the test.
func useFakeClock(t *testing.T) *drifttest.FakeClock {
	t.Helper()
	return drifttest.NewFakeClock().Install(t)
}

func newDefault(t *testing.T) *Control {
	t.Helper()
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	return c
}
