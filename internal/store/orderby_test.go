package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderBy(t *testing.T) {
	allowed := map[string]string{
		"title":      "b.title",
		"created_at": "b.created_at",
	}

	tests := []struct {
		name  string
		param string
		want  string
	}{
		{"allowed field ascending", "title", "b.title ASC"},
		{"allowed field descending", "-created_at", "b.created_at DESC"},
		{"empty falls back to default", "", "b.created_at DESC NULLS LAST"},
		{"unknown field falls back to default", "price", "b.created_at DESC NULLS LAST"},
		{"injection attempt falls back to default", "title; DROP TABLE books--", "b.created_at DESC NULLS LAST"},
		{"bare dash falls back to default", "-", "b.created_at DESC NULLS LAST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.param, allowed, "b.created_at DESC NULLS LAST"))
		})
	}
}
