package wikiknow_test

import (
	"testing"

	"github.com/fwojciec/wikiknow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawRecord(t *testing.T) {
	t.Parallel()

	t.Run("parses header fields and flattens body", func(t *testing.T) {
		t.Parallel()

		data := "标题：快速排序\n" +
			"分类：排序算法\t比较排序\n" +
			"链接地址：https://zh.wikipedia.org/wiki/快速排序\n" +
			"抓取时间：2024-01-01 12:00:00\n" +
			"\n" +
			"<div class=\"mw-parser-output\">\n<p>hello</p>\n</div>\n"

		rec, err := wikiknow.ParseRawRecord(data)

		require.NoError(t, err)
		assert.Equal(t, "快速排序", rec.Title)
		assert.Equal(t, []string{"排序算法", "比较排序"}, rec.Categories)
		assert.Equal(t, "https://zh.wikipedia.org/wiki/快速排序", rec.URL)
		assert.Equal(t, "2024-01-01 12:00:00", rec.Timestamp)
		assert.Equal(t, "<div class=\"mw-parser-output\"> <p>hello</p> </div> ", rec.Body)
	})

	t.Run("counts prefixes in characters not bytes", func(t *testing.T) {
		t.Parallel()

		data := "abcTitle\nxyzCat\nurl: u\ntime: t\n\n<p></p>"

		rec, err := wikiknow.ParseRawRecord(data)

		require.NoError(t, err)
		assert.Equal(t, "Title", rec.Title)
		assert.Equal(t, []string{"Cat"}, rec.Categories)
		assert.Equal(t, "u", rec.URL)
		assert.Equal(t, "t", rec.Timestamp)
		assert.Equal(t, "<p></p>", rec.Body)
	})

	t.Run("strips carriage returns from header lines", func(t *testing.T) {
		t.Parallel()

		rec, err := wikiknow.ParseRawRecord("abcTitle\r\nxyzA\tB\r\nurl: u\r\ntime: t\r\n\r\n")

		require.NoError(t, err)
		assert.Equal(t, "Title", rec.Title)
		assert.Equal(t, []string{"A", "B"}, rec.Categories)
		assert.Equal(t, "t", rec.Timestamp)
	})

	t.Run("drops empty categories", func(t *testing.T) {
		t.Parallel()

		rec, err := wikiknow.ParseRawRecord("abcTitle\nxyz\nurl: u\ntime: t")

		require.NoError(t, err)
		assert.Empty(t, rec.Categories)
		assert.Empty(t, rec.Body)
	})

	t.Run("rejects records with too few lines", func(t *testing.T) {
		t.Parallel()

		_, err := wikiknow.ParseRawRecord("abcTitle\nxyzCat")

		require.Error(t, err)
		assert.Equal(t, wikiknow.EFORMAT, wikiknow.ErrorCode(err))
	})

	t.Run("rejects header lines shorter than their prefix", func(t *testing.T) {
		t.Parallel()

		_, err := wikiknow.ParseRawRecord("abcTitle\nxyzCat\nurl\ntime: t")

		require.Error(t, err)
		assert.Equal(t, wikiknow.EFORMAT, wikiknow.ErrorCode(err))
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		_, err := wikiknow.ParseRawRecord("abc\nxyzCat\nurl: u\ntime: t")

		require.Error(t, err)
		assert.Equal(t, wikiknow.EFORMAT, wikiknow.ErrorCode(err))
	})
}
