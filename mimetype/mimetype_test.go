package mimetype_test

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pwdkek/mimetype"
)

var _ = Describe("Mimetype", func() {
	Describe("IsArchive", func() {
		check := func(name, mime string, archive bool) {
			got, ok := mimetype.IsArchive(name)
			Expect(ok).To(Equal(archive), name)
			Expect(got).To(Equal(mime), name)
		}

		It("recognizes archives by suffix", func() {
			check("rockyou.txt.tar.gz", mimetype.Tar, true)
			check("rockyou.tgz", mimetype.Tar, true)
			check("words.zip", mimetype.Zip, true)
			check("crackstation.txt.gz", mimetype.Gzip, true)
			check("sorted.txt", "", false)
		})
	})

	Describe("Detect", func() {
		It("detects gzip content regardless of the name", func() {
			buf := &bytes.Buffer{}
			gz := gzip.NewWriter(buf)
			_, err := gz.Write([]byte("password\n123456\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(gz.Close()).To(Succeed())

			br := bufio.NewReader(bytes.NewReader(buf.Bytes()))
			mime, err := mimetype.Detect("dataset", br)
			Expect(err).NotTo(HaveOccurred())
			Expect(mime).To(Equal(mimetype.Gzip))
		})

		It("detects plain text", func() {
			br := bufio.NewReader(strings.NewReader("password\n123456\n"))
			mime, err := mimetype.Detect("dataset.txt", br)
			Expect(err).NotTo(HaveOccurred())
			Expect(mime).To(Equal(mimetype.Text))
		})

		It("does not consume the reader", func() {
			br := bufio.NewReader(strings.NewReader("abc"))
			_, err := mimetype.Detect("x", br)
			Expect(err).NotTo(HaveOccurred())

			rest, err := br.ReadString(0)
			Expect(rest).To(Equal("abc"))
			Expect(err).To(HaveOccurred())
		})
	})
})
