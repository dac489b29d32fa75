package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("negative")

type fitSettings struct {
	iterations int
	loss       string
	calls      []string
}

func withIterations(n int) Option[*fitSettings] {
	return New(func(s *fitSettings) error {
		if n < 0 {
			return errNegative
		}
		s.iterations = n
		s.calls = append(s.calls, "iterations")

		return nil
	})
}

func withLoss(name string) Option[*fitSettings] {
	return NoError(func(s *fitSettings) {
		s.loss = name
		s.calls = append(s.calls, "loss")
	})
}

func TestApply(t *testing.T) {
	s := &fitSettings{}
	require.NoError(t, Apply(s, withIterations(300), nil, withLoss("huber")))
	require.Equal(t, 300, s.iterations)
	require.Equal(t, "huber", s.loss)
	require.Equal(t, []string{"iterations", "loss"}, s.calls)

	require.NoError(t, Apply[*fitSettings](s))
}

func TestApplyStopsAtFirstError(t *testing.T) {
	s := &fitSettings{}
	err := Apply(s, withLoss("cauchy"), withIterations(-1), withLoss("linear"))
	require.ErrorIs(t, err, errNegative)
	require.Contains(t, err.Error(), "option 1")
	require.Equal(t, "cauchy", s.loss)
	require.Equal(t, []string{"loss"}, s.calls)
}

func TestCombine(t *testing.T) {
	defaults := Combine(withIterations(3000), withLoss("soft_l1"))

	s := &fitSettings{}
	require.NoError(t, Apply(s, defaults, withLoss("arctan")))
	require.Equal(t, 3000, s.iterations)
	require.Equal(t, "arctan", s.loss)

	bad := Combine(withIterations(-5))
	require.ErrorIs(t, Apply(&fitSettings{}, bad), errNegative)
}
