package entropy_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pwdkek/entropy"
)

var _ = Describe("Baseline", func() {
	It("scores dictionary passwords lower than generated ones", func() {
		weak := entropy.Estimate("password")
		strong := entropy.Estimate("N9R5tMnaAYKRXgPMWyZsytJt")

		Expect(weak.Entropy).To(BeNumerically("<", strong.Entropy))
		Expect(weak.Score).To(BeNumerically("<", strong.Score))
		Expect(strong.Score).To(Equal(4))
	})

	It("recognises generated secrets", func() {
		Expect(entropy.IsRandomLooking("password")).To(BeFalse())
		Expect(entropy.IsRandomLooking("N9R5tMnaAYKRXgPMWyZsytJt")).To(BeTrue())
	})

	It("has no entropy per character for the empty password", func() {
		Expect(entropy.PerCharacter("")).To(BeZero())
	})
})
