package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Apply(t *testing.T) {
	f := New(DefaultStopwords(), DefaultMinRunes)

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"single runes dropped", []string{"猫", "和", "狗"}, []string{}},
		{"stopwords dropped", []string{"我们", "学习", "一个", "技术"}, []string{"学习", "技术"}},
		{"order kept", []string{"技术", "分析", "数据", "分析"}, []string{"技术", "分析", "数据", "分析"}},
		{"empty", nil, []string{}},
		{"rune length not byte length", []string{"ab", "é", "猫咪"}, []string{"ab", "猫咪"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Apply(tt.tokens))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	f := New(NewStopwordSet([]string{"我们", "一个"}), DefaultMinRunes)
	tokens := []string{"我们", "在", "学习", "人工智能", "一个", "技术", "的", "技术"}

	once := f.Apply(tokens)
	assert.Equal(t, once, f.Apply(once))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	f := New(DefaultStopwords(), DefaultMinRunes)
	tokens := []string{"的", "技术"}
	_ = f.Apply(tokens)
	assert.Equal(t, []string{"的", "技术"}, tokens)
}

func TestFilter_MinRunesOne(t *testing.T) {
	f := New(NewStopwordSet([]string{"和", "在"}), 1)
	got := f.Apply([]string{"猫", "和", "狗", "猫", "在", "追", "狗"})
	assert.Equal(t, []string{"猫", "狗", "猫", "追", "狗"}, got)

	assert.Equal(t, 1, New(StopwordSet{}, 0).minRunes)
}

func TestFilter_CaseSensitive(t *testing.T) {
	f := New(NewStopwordSet([]string{"go"}), DefaultMinRunes)
	assert.Equal(t, []string{"Go"}, f.Apply([]string{"go", "Go"}))
}

func TestStopwordSet(t *testing.T) {
	s := NewStopwordSet([]string{"的", "", "的", "一个"})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("一个"))
	assert.False(t, s.Contains(""))
	assert.ElementsMatch(t, []string{"的", "一个"}, s.Words())

	var zero StopwordSet
	assert.False(t, zero.Contains("的"))
	assert.Equal(t, 0, zero.Len())
}

func TestDefaultStopwords(t *testing.T) {
	s := DefaultStopwords()
	assert.Equal(t, 21, s.Len())
	for _, w := range []string{"的", "和", "在", "我们", "一个", "就"} {
		assert.True(t, s.Contains(w), w)
	}
}
