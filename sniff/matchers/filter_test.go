package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pwdkek/sniff/matchers"
	"github.com/pivotal-cf/pwdkek/sniff/matchers/matchersfakes"
)

var _ = Describe("Filter", func() {
	var (
		filter     matchers.Matcher
		submatcher *matchersfakes.FakeMatcher

		filters []string
		line    []byte
	)

	BeforeEach(func() {
		filters = []string{}

		submatcher = &matchersfakes.FakeMatcher{}
		line = []byte("this is a very expensive String to scan")
	})

	JustBeforeEach(func() {
		filter = matchers.Filter(submatcher, filters...)
	})

	Context("when none of the filters match", func() {
		BeforeEach(func() {
			filters = []string{"word", "$"}
		})

		It("returns false without calling the submatcher", func() {
			Expect(filter.Match(line)).To(BeFalse())
			Expect(submatcher.MatchCallCount()).To(BeZero())
		})
	})

	Context("when at least one of the filters match", func() {
		BeforeEach(func() {
			filters = []string{"STRING", "$"}
		})

		It("returns whatever the submatcher returns for the original line", func() {
			submatcher.MatchReturns(true, 26, 32)

			matched, start, end := filter.Match(line)
			Expect(matched).To(BeTrue())
			Expect(start).To(Equal(26))
			Expect(end).To(Equal(32))
			Expect(submatcher.MatchArgsForCall(0)).To(Equal(line))
		})
	})
})
