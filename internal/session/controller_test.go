package session_test

import (
	"context"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

type recordingPlayer struct {
	buffers [][]int16
}

func (p *recordingPlayer) Play(samples []int16) { p.buffers = append(p.buffers, samples) }
func (p *recordingPlayer) Close() error         { return nil }

var _ = Describe("Controller", func() {
	var (
		ctrl   *session.Controller
		player *recordingPlayer
	)

	BeforeEach(func() {
		player = &recordingPlayer{}
		ctrl = session.New(session.Options{MaxValue: 1800, Seed: 42, Player: player, Logger: zap.NewNop()})
	})

	Context("before a selection", func() {
		It("reports an empty, idle session", func() {
			snap := ctrl.Snapshot()
			Expect(snap.Kind).To(Equal(sorting.None))
			Expect(snap.Values).To(BeEmpty())
			Expect(snap.Highlight).To(BeEmpty())
			Expect(snap.Started).To(BeFalse())
			Expect(snap.Finished).To(BeFalse())
		})

		It("ignores ticks", func() {
			res := ctrl.Tick()
			Expect(res.Terminated).To(BeFalse())
			Expect(ctrl.Snapshot().Stats).To(Equal(session.Stats{}))
		})

		It("rejects the empty selection", func() {
			Expect(ctrl.SelectAlgorithm(sorting.None)).To(MatchError(sorting.ErrUnknownAlgorithm))
			Expect(ctrl.Snapshot().Started).To(BeFalse())
		})
	})

	Describe("SelectAlgorithm", func() {
		It("fills the array with values in [0, max]", func() {
			Expect(ctrl.SelectAlgorithm(sorting.Bubble)).To(Succeed())

			snap := ctrl.Snapshot()
			Expect(snap.Values).To(HaveLen(sorting.DefaultSize))
			for _, v := range snap.Values {
				Expect(v).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1800)))
			}
			Expect(snap.Started).To(BeTrue())
			Expect(snap.Finished).To(BeFalse())
			Expect(snap.RunID).NotTo(BeEmpty())
		})

		It("discards the previous run when switching algorithms", func() {
			Expect(ctrl.SelectAlgorithm(sorting.Bubble)).To(Succeed())
			for i := 0; i < 250; i++ {
				ctrl.Tick()
			}
			before := ctrl.Snapshot()
			Expect(before.Stats.Steps).NotTo(BeZero())

			Expect(ctrl.SelectAlgorithm(sorting.Insertion)).To(Succeed())

			Expect(ctrl.State()).To(Equal(sorting.State{Kind: sorting.Insertion, I: 1, J: 1}))
			after := ctrl.Snapshot()
			Expect(after.Started).To(BeTrue())
			Expect(after.Finished).To(BeFalse())
			Expect(after.Values).NotTo(Equal(before.Values))
			Expect(after.RunID).NotTo(Equal(before.RunID))
			Expect(after.Stats).To(Equal(session.Stats{}))
			Expect(after.Highlight).To(BeEmpty())
		})
	})

	DescribeTable("ticks a random array to sorted and then stops",
		func(kind sorting.Kind) {
			Expect(ctrl.SelectAlgorithm(kind)).To(Succeed())
			Expect(ctrl.Drain(context.Background(), nil)).To(Succeed())

			snap := ctrl.Snapshot()
			Expect(snap.Finished).To(BeTrue())
			Expect(sort.IntsAreSorted(snap.Values)).To(BeTrue())
			Expect(snap.Highlight).To(BeEmpty())

			ctrl.Tick()
			Expect(ctrl.Snapshot().Stats.Steps).To(Equal(snap.Stats.Steps))
			Expect(ctrl.Snapshot().Values).To(Equal(snap.Values))
		},
		Entry("bubble", sorting.Bubble),
		Entry("insertion", sorting.Insertion),
		Entry("selection", sorting.Selection),
	)

	Describe("Load", func() {
		It("sorts a copy of the given values", func() {
			input := []int{5, 3, 4, 1, 2}
			Expect(ctrl.Load(sorting.Bubble, input)).To(Succeed())

			var highlights [][]int
			Expect(ctrl.Drain(context.Background(), func(res sorting.Result) bool {
				if res.Compared && ctrl.State().I == 0 {
					highlights = append(highlights, res.Highlight)
				}
				return true
			})).To(Succeed())

			Expect(ctrl.Snapshot().Values).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(input).To(Equal([]int{5, 3, 4, 1, 2}))
			Expect(highlights).To(Equal([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}))
		})

		It("rejects values outside [0, max]", func() {
			Expect(ctrl.Load(sorting.Selection, []int{1, 1801})).To(MatchError(session.ErrValueOutOfRange))
			Expect(ctrl.Load(sorting.Selection, []int{-1})).To(MatchError(session.ErrValueOutOfRange))
		})
	})

	It("hands every tone to the player", func() {
		Expect(ctrl.Load(sorting.Selection, []int{2, 2, 2})).To(Succeed())
		Expect(ctrl.Drain(context.Background(), nil)).To(Succeed())

		snap := ctrl.Snapshot()
		Expect(snap.Stats.Swaps).To(BeZero())
		Expect(snap.Stats.Tones).To(Equal(3))
		Expect(player.buffers).To(HaveLen(3))
		for _, buf := range player.buffers {
			// 15ms at 44100 Hz
			Expect(buf).To(HaveLen(661))
		}
	})

	It("returns snapshots that do not alias session state", func() {
		Expect(ctrl.Load(sorting.Bubble, []int{2, 1})).To(Succeed())
		ctrl.Tick()

		snap := ctrl.Snapshot()
		snap.Values[0] = 99
		snap.Highlight[0] = 7

		again := ctrl.Snapshot()
		Expect(again.Values).To(Equal([]int{1, 2}))
		Expect(again.Highlight).To(Equal([]int{0, 1}))
	})

	It("stops draining when the context is cancelled", func() {
		Expect(ctrl.SelectAlgorithm(sorting.Bubble)).To(Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(ctrl.Drain(ctx, nil)).To(MatchError(context.Canceled))
		Expect(ctrl.Finished()).To(BeFalse())
	})
})
