package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calG1/PDF-Translator/internal/engine"
)

var _ = Describe("Page Range Parser", func() {
	DescribeTable("ParsePageRange",
		func(rangeStr string, maxPages int, expected []int) {
			Expect(engine.ParsePageRange(rangeStr, maxPages)).To(Equal(expected))
		},
		Entry("range plus single page", "1-3,5", 6, []int{1, 2, 3, 5}),
		Entry("empty selects all pages", "", 6, []int{1, 2, 3, 4, 5, 6}),
		Entry("whitespace only selects all pages", "   ", 3, []int{1, 2, 3}),
		Entry("out-of-bounds page dropped", "9", 6, []int{}),
		Entry("reversed range selects nothing", "2-1", 6, []int{}),
		Entry("range clamped to document", "4-9", 6, []int{4, 5, 6}),
		Entry("duplicates collapse", "2,2,1-2", 6, []int{1, 2}),
		Entry("garbage tokens dropped", "a,1,x-2", 6, []int{1}),
		Entry("tokens may carry spaces", " 2 , 4 ", 6, []int{2, 4}),
	)
})
