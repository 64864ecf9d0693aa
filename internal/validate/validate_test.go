package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	type settings struct {
		Interval time.Duration `validate:"gt=0"`
		Decay    float64       `validate:"gt=0,lte=1"`
	}
	require.NoError(t, Struct(settings{Interval: time.Second, Decay: 0.9}))
	assert.Error(t, Struct(settings{Interval: 0, Decay: 0.9}))
	assert.Error(t, Struct(settings{Interval: time.Second, Decay: 1.1}))
}

func TestVar(t *testing.T) {
	require.NoError(t, Var(20, "gte=1,lte=200"))
	assert.Error(t, Var(0, "gte=1,lte=200"))
}
