package estimator_test

import (
	"math"
	"math/rand"
	"strings"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/corpus"
	"github.com/pivotal-cf/pwdkek/estimator"
	"github.com/pivotal-cf/pwdkek/estimator/estimatorfakes"
	"github.com/pivotal-cf/pwdkek/trie"
)

// naiveCount scans every entry, the reference for the binary searches.
func naiveCount(entries []string, prefix string) int {
	var n int
	for _, e := range entries {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}

func naiveEntropy(entries []string, password string) float64 {
	var entropy float64
	for i := 0; i < len(password); i++ {
		total := naiveCount(entries, password[:i])
		matched := naiveCount(entries, password[:i+1])
		entropy -= math.Log2(float64(matched) / float64(total))
	}
	return entropy
}

func mustCorpus(entries ...string) *corpus.Corpus {
	c, err := corpus.New(entries)
	Expect(err).NotTo(HaveOccurred())
	return c
}

var _ = Describe("Entropy", func() {
	var a *alphabet.Alphabet

	BeforeEach(func() {
		a = alphabet.Default()
	})

	Describe("Probability", func() {
		It("divides continuation counts by context counts", func() {
			c := mustCorpus("aaa", "aab", "aac", "aba")
			Expect(estimator.Probability(c, "", "a")).To(Equal(1.0))
			Expect(estimator.Probability(c, "a", "a")).To(Equal(0.75))
			Expect(estimator.Probability(c, "aa", "c")).To(BeNumerically("~", 1.0/3, 1e-12))
		})

		It("is zero for an unseen context", func() {
			c := mustCorpus("aaa")
			Expect(estimator.Probability(c, "b", "a")).To(BeZero())
		})

		It("does not count the continuation when the context is unseen", func() {
			fake := &estimatorfakes.FakePrefixCounter{}
			fake.CountWithPrefixReturns(0)

			Expect(estimator.Probability(fake, "x", "y")).To(BeZero())
			Expect(fake.CountWithPrefixCallCount()).To(Equal(1))
		})
	})

	It("scores the reference example", func() {
		c := mustCorpus("aaa", "aab", "aac", "aba")

		entropy, err := estimator.Entropy(c, a, "aaa", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())
		// 0 + -log2(3/4) + -log2(1/3)
		Expect(entropy).To(BeNumerically("~", 2.0, 1e-9))

		entropy, err = estimator.Entropy(c, a, "aba", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())
		// 0 + -log2(1/4) + 0
		Expect(entropy).To(BeNumerically("~", 2.0, 1e-9))

		entropy, err = estimator.Entropy(c, a, "aa", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())
		Expect(entropy).To(BeNumerically("~", -math.Log2(0.75), 1e-9))
	})

	It("is zero for the empty password", func() {
		c := mustCorpus("a")
		entropy, err := estimator.Entropy(c, a, "", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())
		Expect(entropy).To(BeZero())
	})

	It("agrees with naive counting when every prefix has support", func() {
		entries := []string{
			"123456", "12345678", "abc123", "iloveyou", "password", "password1",
			"princess", "qwerty", "rockyou", "sunshine",
		}
		c := mustCorpus(entries...)
		random := rand.New(rand.NewSource(42))

		for i := 0; i < 50; i++ {
			entry := entries[random.Intn(len(entries))]
			password := entry[:1+random.Intn(len(entry))]

			entropy, err := estimator.Entropy(c, a, password, estimator.DefaultFloor)
			Expect(err).NotTo(HaveOccurred())
			Expect(entropy).To(BeNumerically("~", naiveEntropy(entries, password), 1e-9), password)
		}
	})

	It("drops the oldest context characters until the next one has support", func() {
		c := mustCorpus("ab", "b", "bc")

		entropy, err := estimator.Entropy(c, a, "abc", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())
		// 'a' 1/3, 'b' after "a" 1/1, 'c' after "ab" unseen -> after "b" 1/2
		Expect(entropy).To(BeNumerically("~", math.Log2(3)+1, 1e-9))
	})

	It("starts every character from the full prefix", func() {
		c := mustCorpus("ab", "b", "bc")
		fake := &estimatorfakes.FakePrefixCounter{}
		fake.CountWithPrefixStub = c.CountWithPrefix

		_, err := estimator.Entropy(fake, a, "xbc", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())

		var contexts []string
		for i := 0; i < fake.CountWithPrefixCallCount(); i++ {
			contexts = append(contexts, fake.CountWithPrefixArgsForCall(i))
		}
		Expect(contexts).To(Equal([]string{
			"", "x", // 'x' unseen without context
			"x", "", "b", // "x" unseen, back off to ""
			"xb", "b", "bc", // full prefix again, then back off to "b"
		}))
	})

	It("uses the floor for characters without any support", func() {
		c := mustCorpus("abc")

		entropy, err := estimator.Entropy(c, a, "z", estimator.DefaultFloor)
		Expect(err).NotTo(HaveOccurred())
		Expect(entropy).To(BeNumerically("~", -math.Log2(1e-9), 1e-9))
		Expect(entropy).To(BeNumerically(">=", 29.89))
	})

	It("never scores novel text lower than its unseen first character", func() {
		c := mustCorpus("abc", "abd", "bcd")

		for _, password := range []string{"z", "za", "zab", "zabc", "Zz9!"} {
			entropy, err := estimator.Entropy(c, a, password, estimator.DefaultFloor)
			Expect(err).NotTo(HaveOccurred())
			Expect(entropy).To(BeNumerically(">=", 29.89), password)
		}
	})

	It("rejects passwords with characters outside the alphabet", func() {
		c := mustCorpus("abc")

		_, err := estimator.Entropy(c, a, "ab c", estimator.DefaultFloor)
		Expect(err).To(MatchError(alphabet.ErrInvalidCharacter))
	})

	It("gives the same scores on a trie built from the same corpus", func() {
		entries := []string{"aaa", "aab", "aac", "aba", "b9!", "b9?", "zz"}
		c := mustCorpus(entries...)
		m := trie.Build(lagertest.NewTestLogger("entropy"), a, entries)

		for _, password := range []string{"aaa", "ab", "b9", "b9!", "zza", "Q", "aaz9"} {
			fromCorpus, err := estimator.Entropy(c, a, password, estimator.DefaultFloor)
			Expect(err).NotTo(HaveOccurred())

			fromTrie, err := estimator.Entropy(m, a, password, estimator.DefaultFloor)
			Expect(err).NotTo(HaveOccurred())

			Expect(fromTrie).To(BeNumerically("~", fromCorpus, 1e-12), password)
		}
	})
})
