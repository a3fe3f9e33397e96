package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vitetag/internal/core/domain"
)

func TestTagSet_String(t *testing.T) {
	set := &domain.TagSet{
		Preloads:    []string{"<link p1 />", "<link p2 />"},
		Stylesheets: []string{"<link s1 />"},
		Scripts:     []string{"<script x></script>"},
	}
	assert.Equal(t, "<link p1 /> <link p2 /> <link s1 /> <script x></script>", set.String())
	assert.Equal(t, 4, set.Len())
}

func TestTagSet_String_SkipsEmptyGroups(t *testing.T) {
	set := &domain.TagSet{Scripts: []string{"<script a></script>", "<script b></script>"}}
	assert.Equal(t, "<script a></script> <script b></script>", set.String())

	assert.Empty(t, (&domain.TagSet{}).String())
}

func TestTagSet_Hot(t *testing.T) {
	set := &domain.TagSet{
		Hot:       true,
		DevServer: []string{"<script c></script>", "<link d />"},
		Scripts:   []string{"<script ignored></script>"},
	}
	assert.Equal(t, "<script c></script> <link d />", set.String())
	assert.Equal(t, 2, set.Len())
}
