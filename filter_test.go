package wikiknow_test

import (
	"testing"

	"github.com/fwojciec/wikiknow"
	"github.com/stretchr/testify/assert"
)

func TestNoiseFilter_ShouldSkip(t *testing.T) {
	t.Parallel()

	filter := wikiknow.NewNoiseFilter(wikiknow.DefaultTables().FilterTerms)

	tests := []struct {
		name       string
		title      string
		categories []string
		want       bool
	}{
		{name: "keeps unrelated entity", title: "快速排序", categories: []string{"排序算法"}, want: false},
		{name: "skips denylisted title", title: "魔兽争霸", categories: nil, want: true},
		{name: "skips denylisted title regardless of categories", title: "我的世界", categories: []string{"排序算法"}, want: true},
		{name: "skips denylisted category", title: "某条目", categories: []string{"数学", "电子游戏"}, want: true},
		{name: "skips percent-encoded term", title: "Category:%E6%B8%B8%E6%88%8F", want: true},
		{name: "keeps entity without categories", title: "算法", categories: []string{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, filter.ShouldSkip(tt.title, tt.categories))
		})
	}
}

func TestNoiseFilter_EmptyTerms(t *testing.T) {
	t.Parallel()

	filter := wikiknow.NewNoiseFilter([]string{""})

	assert.False(t, filter.ShouldSkip("anything", []string{"at all"}))
}
