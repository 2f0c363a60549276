package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"1":   1,
		"3":   3,
		"0":   1,
		"-2":  1,
		"abc": 1,
		"2.5": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePage(raw), "raw=%q", raw)
	}
}

func TestPaginateReturnsWindowForEveryPage(t *testing.T) {
	items := seq(35)

	for p := 1; p <= 4; p++ {
		got := Paginate(items, p, QuestionsPerPage)
		start := QuestionsPerPage * (p - 1)
		end := start + QuestionsPerPage
		if end > len(items) {
			end = len(items)
		}
		assert.Equal(t, items[start:end], got, "page %d", p)
	}
}

func TestPaginateBeyondEndIsEmpty(t *testing.T) {
	got := Paginate(seq(20), 3, QuestionsPerPage)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, Paginate([]int{}, 1, QuestionsPerPage))
}

func TestPaginateClampsPage(t *testing.T) {
	assert.Equal(t, []int{0, 1}, Paginate(seq(5), 0, 2))
	assert.Empty(t, Paginate(seq(5), 1, 0))
}
