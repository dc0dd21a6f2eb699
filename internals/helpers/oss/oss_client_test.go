// file: internals/helpers/oss/oss_client_test.go
package oss

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteItemKey(t *testing.T) {
	student := uuid.New()
	project := uuid.New()
	item := uuid.New()

	key := NoteItemKey(student, project, item, "chapter-1.pdf")
	assert.Equal(t,
		fmt.Sprintf("students/%s/%s/%s/chapter-1.pdf", student, project, item),
		key)
}

func TestNoteItemKeySanitizesFileName(t *testing.T) {
	student := uuid.New()
	project := uuid.New()
	item := uuid.New()

	key := NoteItemKey(student, project, item, "../../etc/passwd")
	assert.Equal(t,
		fmt.Sprintf("students/%s/%s/%s/passwd", student, project, item),
		key)
}

func TestSafeFileName(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"report.pdf", "report.pdf"},
		{"  report.pdf  ", "report.pdf"},
		{"dir/sub/report.pdf", "report.pdf"},
		{`c:\files\report.docx`, "report.docx"},
		{"we?ird#na%me.pdf", "we_ird_na_me.pdf"},
		{"", "file"},
		{"   ", "file"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, SafeFileName(tc.in), "input %q", tc.in)
	}
}

func TestWithPrefix(t *testing.T) {
	s := &Service{Prefix: "stepwise"}
	assert.Equal(t, "stepwise/a/b.pdf", s.withPrefix("/a/b.pdf"))
	assert.Equal(t, "stepwise/a/b.pdf", s.withPrefix("a/b.pdf"))

	bare := &Service{}
	assert.Equal(t, "a/b.pdf", bare.withPrefix("/a/b.pdf"))
}
