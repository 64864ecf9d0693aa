package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/report-repair/internal/validate"
)

const (
	// MinValues is the smallest input that can hold a triple.
	MinValues = 3
	// MaxMagnitude bounds every value so the product of three fits in an int64.
	MaxMagnitude = 1_000_000
)

var (
	// ErrInsufficientInput is returned when fewer than MinValues integers are read.
	ErrInsufficientInput = errors.New("insufficient input")
	// ErrValueOutOfRange is returned for a value beyond ±MaxMagnitude.
	ErrValueOutOfRange = errors.New("value out of range")
)

//nolint:gochecknoglobals // constant validator tag.
var rangeTag = fmt.Sprintf("min=%d,max=%d", -MaxMagnitude, MaxMagnitude)

// Set is the ascending, immutable list of puzzle values.
type Set struct {
	values []int
}

// Read consumes whitespace-separated integers from r until EOF and sorts them.
// Reading stops at the first token that is not an integer.
func Read(r io.Reader) (Set, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var values []int
	for sc.Scan() {
		tok := sc.Text()
		n, err := strconv.Atoi(tok)
		if err != nil {
			logrus.Warnf("stopped reading input at non-integer token %q after %d values", tok, len(values))
			break
		}
		values = append(values, n)
	}
	if err := sc.Err(); err != nil {
		return Set{}, fmt.Errorf("read input: %w", err)
	}
	return New(values)
}

// New builds a Set from values, which are copied and sorted.
func New(values []int) (Set, error) {
	if len(values) < MinValues {
		return Set{}, fmt.Errorf("%w: got %d values, need at least %d", ErrInsufficientInput, len(values), MinValues)
	}
	for i, v := range values {
		if err := validate.Var(v, rangeTag); err != nil {
			return Set{}, fmt.Errorf("%w: value %d (#%d) exceeds ±%d", ErrValueOutOfRange, v, i+1, MaxMagnitude)
		}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	logrus.Debugf("loaded %d values (min %d, max %d)", len(sorted), sorted[0], sorted[len(sorted)-1])
	return Set{values: sorted}, nil
}

func (s Set) Len() int { return len(s.values) }

func (s Set) At(i int) int { return s.values[i] }

// Values returns a copy of the sorted values.
func (s Set) Values() []int { return slices.Clone(s.values) }
