package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/session"
)

var _ = DescribeTable("Sortedness",
	func(values []int, want float64) {
		Expect(session.Sortedness(values)).To(BeNumerically("~", want, 1e-9))
	},
	Entry("empty", []int{}, 1.0),
	Entry("single value", []int{7}, 1.0),
	Entry("sorted with duplicates", []int{1, 1, 2, 3}, 1.0),
	Entry("reversed", []int{3, 2, 1}, 0.0),
	Entry("half ordered", []int{5, 3, 4}, 0.5),
)
