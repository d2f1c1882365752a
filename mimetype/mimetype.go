package mimetype

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

const (
	Gzip = "application/gzip"
	Tar  = "application/x-tar"
	Zip  = "application/zip"
	Text = "text/plain"
)

const sniffLen = 512

func IsArchive(filename string) (string, bool) {
	if strings.HasSuffix(filename, ".tar") ||
		strings.HasSuffix(filename, ".tar.gz") ||
		strings.HasSuffix(filename, ".tgz") {
		return Tar, true
	} else if strings.HasSuffix(filename, ".zip") ||
		strings.HasSuffix(filename, ".jar") {
		return Zip, true
	} else if strings.HasSuffix(filename, ".gz") {
		return Gzip, true
	} else {
		return "", false
	}
}

// Detect sniffs the start of br without consuming it. Content wins over the
// file name; the name only breaks ties for content the magic table does not
// know.
func Detect(filename string, br *bufio.Reader) (string, error) {
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", err
	}

	if mime := normalize(mimemagic.Match("", head)); mime != "" {
		return mime, nil
	}

	if mime, ok := IsArchive(filename); ok {
		return mime, nil
	}

	if bytes.IndexByte(head, 0) == -1 {
		return Text, nil
	}

	return "application/octet-stream", nil
}

func normalize(mime string) string {
	switch mime {
	case "application/gzip", "application/x-gzip":
		return Gzip
	case "application/x-tar", "application/x-gtar":
		return Tar
	case "application/zip", "application/x-zip-compressed", "application/java-archive":
		return Zip
	case "":
		return ""
	}

	if strings.HasPrefix(mime, "text/") {
		return Text
	}

	return mime
}
