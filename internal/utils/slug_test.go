package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToSlugAt(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	suffix := strconv.FormatInt(now.UnixMilli(), 36)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"chinese name kept", "红烧肉", "红烧肉-" + suffix},
		{"latin lowered and hyphenated", "Beef Noodle Soup", "beef-noodle-soup-" + suffix},
		{"punctuation stripped", "Mac & Cheese!!!", "mac-cheese-" + suffix},
		{"mixed script", "宫保鸡丁 Kung Pao", "宫保鸡丁-kung-pao-" + suffix},
		{"consecutive spaces collapse", "a   b", "a-b-" + suffix},
		{"surrounding whitespace trimmed", "  清蒸鱼  ", "清蒸鱼-" + suffix},
		{"symbols only fall back", "!!!@@@", "recipe-" + suffix},
		{"empty falls back", "", "recipe-" + suffix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toSlugAt(tt.in, now))
		})
	}
}

func TestToSlugUnique(t *testing.T) {
	a := toSlugAt("红烧肉", time.UnixMilli(1700000000000))
	b := toSlugAt("红烧肉", time.UnixMilli(1700000000001))
	assert.NotEqual(t, a, b)
}
