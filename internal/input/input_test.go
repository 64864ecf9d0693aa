//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package input

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr error
	}{
		{name: "sorted on read", in: "1721\n979\n366\n299\n675\n1456\n", want: []int{299, 366, 675, 979, 1456, 1721}},
		{name: "mixed whitespace", in: "  3\t1 \n\n 2 ", want: []int{1, 2, 3}},
		{name: "negatives and duplicates", in: "5 -1 5 0", want: []int{-1, 0, 5, 5}},
		{name: "stops at first non-integer", in: "10 20 30 x 40", want: []int{10, 20, 30}},
		{name: "empty", in: "", wantErr: ErrInsufficientInput},
		{name: "two values", in: "1010 1010", wantErr: ErrInsufficientInput},
		{name: "garbage before enough values", in: "1 2 three 4", wantErr: ErrInsufficientInput},
		{name: "range bounds accepted", in: "1000000 -1000000 0", want: []int{-1_000_000, 0, 1_000_000}},
		{name: "value above range", in: "1 2 1000001", wantErr: ErrValueOutOfRange},
		{name: "value below range", in: "-1000001 2 3", wantErr: ErrValueOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Values())
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestRead_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

func TestNew_CopiesInput(t *testing.T) {
	src := []int{3, 2, 1}
	s, err := New(src)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1}, src, "caller slice must not be reordered")
	assert.Equal(t, 1, s.At(0))

	out := s.Values()
	out[0] = 99
	assert.Equal(t, 1, s.At(0), "Values must return a copy")
}

func TestNew_RejectsValuesThatWouldWrap(t *testing.T) {
	// MaxInt + MaxInt + 2022 wraps around to 2020.
	_, err := New([]int{math.MaxInt, math.MaxInt, 2022})
	require.ErrorIs(t, err, ErrValueOutOfRange)
}
