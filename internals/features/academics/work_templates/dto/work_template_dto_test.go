// file: internals/features/academics/work_templates/dto/work_template_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkTemplateCreateNormalizeSortsChapters(t *testing.T) {
	d := WorkTemplateCreateDTO{
		WorkTemplateName: "  Diploma outline ",
		Chapters: []TemplateChapterDTO{
			{OrderNumber: 3, Title: " Results "},
			{OrderNumber: 1, Title: "Introduction"},
			{OrderNumber: 2, Title: "Methods"},
		},
	}
	d.Normalize()

	assert.Equal(t, "Diploma outline", d.WorkTemplateName)
	assert.Equal(t, []int{1, 2, 3}, []int{d.Chapters[0].OrderNumber, d.Chapters[1].OrderNumber, d.Chapters[2].OrderNumber})
	assert.Equal(t, "Results", d.Chapters[2].Title)
}

func TestChaptersContiguous(t *testing.T) {
	cases := []struct {
		name   string
		orders []int
		ok     bool
	}{
		{"1..3", []int{1, 2, 3}, true},
		{"single", []int{1}, true},
		{"gap", []int{1, 3}, false},
		{"starts at 2", []int{2, 3}, false},
		{"duplicate", []int{1, 1, 2}, false},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := WorkTemplateCreateDTO{}
			for _, n := range tc.orders {
				d.Chapters = append(d.Chapters, TemplateChapterDTO{OrderNumber: n, Title: "ch"})
			}
			d.Normalize()
			assert.Equal(t, tc.ok, d.ChaptersContiguous())
		})
	}
}

func TestToModelDerivesChapterCount(t *testing.T) {
	d := WorkTemplateCreateDTO{
		WorkTemplateName: "Coursework outline",
		Chapters: []TemplateChapterDTO{
			{OrderNumber: 1, Title: "Introduction"},
			{OrderNumber: 2, Title: "Analysis"},
		},
	}
	m := d.ToModel()
	require.Len(t, m.WorkTemplateChapters, 2)
	assert.Equal(t, 2, m.WorkTemplateCountOfChapters)
	assert.Equal(t, "Analysis", m.WorkTemplateChapters[1].TemplateChapterTitle)
}
