package isotherm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/statepoint"
)

func solvedUnary(t *testing.T, x []float64) *Model {
	t.Helper()
	m := newLangmuir(t)
	require.NoError(t, m.Solve(&stubSolver{x: x}))

	return m
}

func TestCombineUnary(t *testing.T) {
	own := solvedUnary(t, []float64{-6.87, -6.21, 1.16})
	companion := solvedUnary(t, []float64{-5.15, -6.22, 2.22})

	b, err := NewBinaryFromUnary(binarySet(t), own, companion)
	require.NoError(t, err)

	assert.Equal(t, []float64{-6.87, -6.21, 1.16, -5.15, -6.22}, b.Parameters())
	assert.False(t, b.Solved())

	for _, pair := range [][2]string{
		{ParamOwnEnthalpy, ParamOwnEnthalpy},
		{ParamOwnAffinity, ParamOwnAffinity},
		{ParamOwnCapacity, ParamOwnCapacity},
	} {
		got, err := b.Parameter(pair[0])
		require.NoError(t, err)
		want, err := own.Parameter(pair[1])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// seeds are a starting point, every parameter is refit
	s := &stubSolver{x: []float64{-7, -6, 1.2, -5, -6}}
	require.NoError(t, b.Solve(s))
	assert.Equal(t, []float64{-6.87, -6.21, 1.16, -5.15, -6.22}, s.got.Initial)
	assert.Equal(t, []float64{-7, -6, 1.2, -5, -6}, b.Parameters())
}

func TestCombineUnaryErrors(t *testing.T) {
	own := solvedUnary(t, []float64{-6.87, -6.21, 1.16})
	unsolved := newLangmuir(t)

	b, err := NewModel(BinaryLangmuir{}, binarySet(t))
	require.NoError(t, err)

	require.ErrorIs(t, CombineUnary(b, own, unsolved), errs.ErrNotSolved)
	require.ErrorIs(t, CombineUnary(b, own, nil), errs.ErrIncompatibleModel)
	require.ErrorIs(t, CombineUnary(own, own, own), errs.ErrIncompatibleModel)

	p, q, T := langmuirData()
	data, err := statepoint.NewUnary(p, q, T, scale.Reference{})
	require.NoError(t, err)
	bet, err := NewModel(BET{}, data)
	require.NoError(t, err)
	require.NoError(t, bet.Solve(&stubSolver{x: []float64{1, 1, 0.1}}))
	require.ErrorIs(t, CombineUnary(b, own, bet), errs.ErrIncompatibleModel)

	assert.Equal(t, []float64{-10, -1, 1, -10, -1}, b.Parameters())
}
