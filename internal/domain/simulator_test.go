package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// scriptedSource replays fixed draws and fails the test if a draw is out of
// the requested range.
type scriptedSource struct {
	t     *testing.T
	draws []int
	asked []int
}

func (s *scriptedSource) IntN(n int) int {
	s.t.Helper()
	s.asked = append(s.asked, n)
	require.NotEmpty(s.t, s.draws, "unexpected draw IntN(%d)", n)

	v := s.draws[0]
	s.draws = s.draws[1:]
	require.Less(s.t, v, n, "draw out of range")

	return v
}

func TestSimulator_ScriptedDraws(t *testing.T) {
	src := &scriptedSource{t: t, draws: []int{
		0, 1, 2, // point at 1 to C
		1, 0, 1, 3, 0, // insertion of GA at 0
		2, 4, 2, // deletion of 3 at 4, clamped to 2
	}}
	seq := m.Sequence("AAAA")

	records, err := NewSimulator(src).Simulate(&seq, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, []m.MutationRecord{
		{Index: 1, Kind: m.MutationPoint, Original: "A", Mutated: "C"},
		{Index: 0, Kind: m.MutationInsertion, Original: m.NoBase, Mutated: "GA"},
		{Index: 4, Kind: m.MutationDeletion, Original: "AA", Mutated: m.NoBase},
	}, records)
	assert.Equal(t, "GAAC", seq.String())
	assert.Empty(t, src.draws)
}

func TestSimulator_NoOp(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		seq := m.Sequence("")

		records, err := NewSimulator(&scriptedSource{t: t}).Simulate(&seq, 5, 3)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("zero mutations", func(t *testing.T) {
		seq := m.Sequence("ATCG")

		records, err := NewSimulator(&scriptedSource{t: t}).Simulate(&seq, 0, 3)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, "ATCG", seq.String())
	})
}

func TestSimulator_StopsWhenSequenceIsExhausted(t *testing.T) {
	src := &scriptedSource{t: t, draws: []int{2, 0, 0}}
	seq := m.Sequence("A")

	records, err := NewSimulator(src).Simulate(&seq, 5, 3)
	require.NoError(t, err)

	assert.Equal(t, []m.MutationRecord{
		{Index: 0, Kind: m.MutationDeletion, Original: "A", Mutated: m.NoBase},
	}, records)
	assert.Empty(t, seq)
}

func TestSimulator_NonPositiveIndelSizeMeansOne(t *testing.T) {
	src := &scriptedSource{t: t, draws: []int{1, 0, 0, 2}}
	seq := m.Sequence("AT")

	records, err := NewSimulator(src).Simulate(&seq, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, []m.MutationRecord{
		{Index: 0, Kind: m.MutationInsertion, Original: m.NoBase, Mutated: "C"},
	}, records)
	assert.Equal(t, "CAT", seq.String())
}

func TestSimulator_SeededRunsStayInBounds(t *testing.T) {
	rnd := rand.New(rand.NewPCG(9, 99))

	for seed := uint64(1); seed <= 1000; seed++ {
		original := m.Sequence(randomSequence(rnd, "ATCG", 1+rnd.IntN(30)))
		seq := original.Clone()
		n := 1 + rnd.IntN(20)

		records, err := NewSimulator(NewRandomSource(seed)).Simulate(&seq, n, 1+rnd.IntN(5))
		require.NoError(t, err, "seed %d", seed)
		require.LessOrEqual(t, len(records), n)

		if len(records) < n {
			assert.Empty(t, seq, "seed %d stopped early on a non-empty sequence", seed)
		}

		assert.Equal(t, seq.String(), replay(t, original, records), "seed %d", seed)
	}
}

func TestSimulator_SameSeedSameResult(t *testing.T) {
	first := m.Sequence("ATGCATGCATGCATGC")
	second := first.Clone()

	a, err := NewSimulator(NewRandomSource(1234)).Simulate(&first, 10, 3)
	require.NoError(t, err)

	b, err := NewSimulator(NewRandomSource(1234)).Simulate(&second, 10, 3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, first, second)
}

// replay re-applies a mutation log to original with the primitive mutators.
func replay(t *testing.T, original m.Sequence, records []m.MutationRecord) string {
	t.Helper()

	seq := original.Clone()

	for _, r := range records {
		switch r.Kind {
		case m.MutationPoint:
			require.Equal(t, r.Original, string(seq[r.Index]))
			require.NoError(t, PointMutation(&seq, r.Index, r.Mutated[0]))
		case m.MutationInsertion:
			require.NoError(t, Insertion(&seq, r.Index, r.Mutated))
		case m.MutationDeletion:
			require.Equal(t, r.Original, string(seq[r.Index:r.Index+len(r.Original)]))
			require.NoError(t, Deletion(&seq, r.Index, len(r.Original)))
		default:
			t.Fatalf("unknown mutation kind %q", r.Kind)
		}
	}

	return seq.String()
}
