package sorting_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/sorting"
)

const maxValue = 1800

type trace struct {
	results []sorting.Result
	states  []sorting.State
}

// runToEnd drives Advance until termination, checking the cursor invariant
// and the one-swap-per-step property after every call.
func runToEnd(kind sorting.Kind, values []int) trace {
	st := sorting.NewState(kind)
	var tr trace
	limit := 4*len(values)*len(values) + 16
	for step := 0; ; step++ {
		Expect(step).To(BeNumerically("<", limit), "algorithm did not terminate")

		before := append([]int(nil), values...)
		res := sorting.Advance(values, &st, maxValue)
		Expect(st.Validate(len(values))).To(Succeed())

		changed := diffIndices(before, values)
		Expect(len(changed)).To(BeNumerically("<=", 2))
		if len(changed) == 2 {
			Expect(res.Swapped).To(BeTrue())
			Expect(values[changed[0]]).To(Equal(before[changed[1]]))
			Expect(values[changed[1]]).To(Equal(before[changed[0]]))
			if kind != sorting.Selection {
				Expect(changed[1] - changed[0]).To(Equal(1))
			}
		}
		for _, h := range res.Highlight {
			Expect(h).To(And(BeNumerically(">=", 0), BeNumerically("<", len(values))))
		}
		Expect(len(res.Highlight)).To(BeNumerically("<=", 2))

		tr.results = append(tr.results, res)
		tr.states = append(tr.states, st)
		if res.Terminated {
			return tr
		}
	}
}

func diffIndices(a, b []int) []int {
	var out []int
	for i := range a {
		if a[i] != b[i] {
			out = append(out, i)
		}
	}
	return out
}

func randomValues(r *rand.Rand, n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = r.Intn(maxValue + 1)
	}
	return v
}

func countSwaps(tr trace) int {
	n := 0
	for _, r := range tr.results {
		if r.Swapped {
			n++
		}
	}
	return n
}

var _ = Describe("Advance", func() {
	DescribeTable("sorts any input to non-decreasing order",
		func(kind sorting.Kind) {
			r := rand.New(rand.NewSource(7))
			for _, n := range []int{1, 2, 3, 5, 17, sorting.DefaultSize} {
				for trial := 0; trial < 5; trial++ {
					values := randomValues(r, n)
					want := append([]int(nil), values...)
					sort.Ints(want)

					runToEnd(kind, values)
					Expect(values).To(Equal(want))
				}
			}
		},
		Entry("bubble", sorting.Bubble),
		Entry("insertion", sorting.Insertion),
		Entry("selection", sorting.Selection),
	)

	DescribeTable("handles reversed and already sorted input",
		func(kind sorting.Kind) {
			reversed := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
			runToEnd(kind, reversed)
			Expect(sort.IntsAreSorted(reversed)).To(BeTrue())

			sorted := []int{0, 1, 2, 3, 4}
			tr := runToEnd(kind, sorted)
			Expect(countSwaps(tr)).To(Equal(0))
		},
		Entry("bubble", sorting.Bubble),
		Entry("insertion", sorting.Insertion),
		Entry("selection", sorting.Selection),
	)

	DescribeTable("is a no-op after termination",
		func(kind sorting.Kind) {
			values := []int{4, 1, 3, 2}
			tr := runToEnd(kind, values)
			final := tr.states[len(tr.states)-1]
			Expect(final.Done).To(BeTrue())

			snapshot := append([]int(nil), values...)
			st := final
			for i := 0; i < 10; i++ {
				res := sorting.Advance(values, &st, maxValue)
				Expect(res.Terminated).To(BeTrue())
				Expect(res.Highlight).To(BeEmpty())
				Expect(res.Tone).To(BeNil())
				Expect(res.Swapped).To(BeFalse())
				Expect(values).To(Equal(snapshot))
				Expect(st).To(Equal(final))
			}
		},
		Entry("bubble", sorting.Bubble),
		Entry("insertion", sorting.Insertion),
		Entry("selection", sorting.Selection),
	)

	It("terminates immediately for an empty selection", func() {
		st := sorting.NewState(sorting.None)
		res := sorting.Advance([]int{3, 1}, &st, maxValue)
		Expect(res.Terminated).To(BeTrue())
	})

	Context("bubble", func() {
		It("walks the first outer pass pair by pair", func() {
			values := []int{5, 3, 4, 1, 2}
			tr := runToEnd(sorting.Bubble, values)
			Expect(values).To(Equal([]int{1, 2, 3, 4, 5}))

			var firstPass [][]int
			for _, r := range tr.results {
				if !r.Compared {
					break
				}
				firstPass = append(firstPass, r.Highlight)
			}
			Expect(firstPass).To(Equal([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}))
		})

		It("pitches a swap from the post-swap value at the lower index", func() {
			values := []int{900, 0}
			st := sorting.NewState(sorting.Bubble)
			res := sorting.Advance(values, &st, maxValue)
			Expect(res.Swapped).To(BeTrue())
			Expect(res.Tone).NotTo(BeNil())
			Expect(res.Tone.Duration).To(Equal(sorting.SwapTone))
			Expect(res.Tone.Frequency).To(BeNumerically("==", 200))
		})

		It("advances the boundary without a tone", func() {
			values := []int{1, 2}
			st := sorting.NewState(sorting.Bubble)
			sorting.Advance(values, &st, maxValue)
			Expect(st.J).To(Equal(1))

			res := sorting.Advance(values, &st, maxValue)
			Expect(res.Tone).To(BeNil())
			Expect(st.I).To(Equal(1))
			Expect(st.J).To(Equal(0))
		})
	})

	Context("insertion", func() {
		It("probes backwards and resets the probe at the boundary", func() {
			values := []int{3, 1, 2}
			st := sorting.NewState(sorting.Insertion)

			res := sorting.Advance(values, &st, maxValue)
			Expect(res.Swapped).To(BeTrue())
			Expect(res.Highlight).To(Equal([]int{0, 1}))
			Expect(values).To(Equal([]int{1, 3, 2}))
			Expect(res.Tone.Frequency).To(BeNumerically("~", sorting.Frequency(3, maxValue), 1e-9))
			Expect(st.J).To(Equal(0))

			res = sorting.Advance(values, &st, maxValue)
			Expect(res.Tone).To(BeNil())
			Expect(st.I).To(Equal(2))
			Expect(st.J).To(Equal(2))
		})
	})

	Context("selection", func() {
		It("never swaps equal values but tones every comparison", func() {
			values := []int{2, 2, 2}
			tr := runToEnd(sorting.Selection, values)
			Expect(countSwaps(tr)).To(Equal(0))

			compareTones := 0
			for _, r := range tr.results {
				if r.Tone != nil {
					Expect(r.Tone.Duration).To(Equal(sorting.CompareTone))
					compareTones++
				}
			}
			// two scans: j=1,2 with i=0 then j=2 with i=1
			Expect(compareTones).To(Equal(3))
		})

		It("tracks the running minimum and swaps once per boundary", func() {
			values := []int{3, 1, 2}
			st := sorting.NewState(sorting.Selection)

			res := sorting.Advance(values, &st, maxValue)
			Expect(st.Min).To(Equal(1))
			Expect(res.Highlight).To(Equal([]int{1}))

			res = sorting.Advance(values, &st, maxValue)
			Expect(st.Min).To(Equal(1))
			Expect(res.Highlight).To(Equal([]int{1, 2}))

			res = sorting.Advance(values, &st, maxValue)
			Expect(res.Swapped).To(BeTrue())
			Expect(values).To(Equal([]int{1, 3, 2}))
			Expect(res.Tone.Duration).To(Equal(sorting.SwapTone))
			Expect(res.Tone.Frequency).To(BeNumerically("~", sorting.Frequency(1, maxValue), 1e-9))
			Expect(st).To(Equal(sorting.State{Kind: sorting.Selection, I: 1, J: 2, Min: 1}))
		})
	})
})

var _ = Describe("State", func() {
	It("starts each kind at its initial condition", func() {
		Expect(sorting.NewState(sorting.Bubble)).To(Equal(sorting.State{Kind: sorting.Bubble}))
		Expect(sorting.NewState(sorting.Insertion)).To(Equal(sorting.State{Kind: sorting.Insertion, I: 1, J: 1}))
		Expect(sorting.NewState(sorting.Selection)).To(Equal(sorting.State{Kind: sorting.Selection, J: 1}))
	})

	It("rejects cursors outside their invariant", func() {
		bad := []sorting.State{
			{Kind: sorting.Bubble, I: 1, J: 4},
			{Kind: sorting.Insertion, I: 0, J: 0},
			{Kind: sorting.Insertion, I: 2, J: 3},
			{Kind: sorting.Selection, I: 2, J: 1, Min: 2},
			{Kind: sorting.Selection, I: 1, J: 6, Min: 1},
			{Kind: sorting.Selection, I: 2, J: 3, Min: 1},
		}
		for _, st := range bad {
			err := st.Validate(5)
			Expect(err).To(MatchError(sorting.ErrInvalidState), "%+v", st)
		}
	})
})
