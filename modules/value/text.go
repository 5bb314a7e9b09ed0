package value

import (
	"maps"

	"github.com/spf13/cast"
)

// DefaultLanguage 是单语言字符串进入 Text/URL 时使用的语言码。
const DefaultLanguage = "en"

// Text 是多语言文本：语言码 -> 文本。
type Text map[string]string

func NewText(s string) Text {
	return Text{DefaultLanguage: s}
}

// String 返回默认语言文本；没有默认语言时返回任意一个非空值。
func (t Text) String() string {
	return localized(t).pick(DefaultLanguage)
}

// In 返回指定语言文本，缺失时回退到默认语言。
func (t Text) In(lang string) string {
	return localized(t).pick(lang)
}

func (t Text) IsEmpty() bool {
	return localized(t).empty()
}

func (t Text) Copy() Text {
	if t == nil {
		return nil
	}
	return maps.Clone(t)
}

// Equal 把 nil 与空 map 视为相同。
func (t Text) Equal(o Text) bool {
	return localized(t).equal(localized(o))
}

func (t Text) ToDictionary() map[string]any {
	return localized(t).dictionary()
}

// TextFromAny 接受字符串（默认语言）或 语言码->文本 的 map。
func TextFromAny(v any) (Text, bool) {
	l, ok := localizedFromAny(v)
	return Text(l), ok
}

// URL 是多语言 URL（不同语言可以指向不同地址）。
type URL map[string]string

func NewURL(s string) URL {
	return URL{DefaultLanguage: s}
}

func (u URL) String() string {
	return localized(u).pick(DefaultLanguage)
}

func (u URL) In(lang string) string {
	return localized(u).pick(lang)
}

func (u URL) IsEmpty() bool {
	return localized(u).empty()
}

func (u URL) Copy() URL {
	if u == nil {
		return nil
	}
	return maps.Clone(u)
}

func (u URL) Equal(o URL) bool {
	return localized(u).equal(localized(o))
}

func (u URL) ToDictionary() map[string]any {
	return localized(u).dictionary()
}

func URLFromAny(v any) (URL, bool) {
	l, ok := localizedFromAny(v)
	return URL(l), ok
}

type localized map[string]string

func (l localized) pick(lang string) string {
	if s, ok := l[lang]; ok {
		return s
	}
	if s, ok := l[DefaultLanguage]; ok {
		return s
	}
	for _, s := range l {
		if s != "" {
			return s
		}
	}
	return ""
}

func (l localized) empty() bool {
	for _, s := range l {
		if s != "" {
			return false
		}
	}
	return true
}

func (l localized) equal(o localized) bool {
	if len(l) == 0 && len(o) == 0 {
		return true
	}
	return maps.Equal(l, o)
}

func (l localized) dictionary() map[string]any {
	out := make(map[string]any, len(l))
	for k, s := range l {
		out[k] = s
	}
	return out
}

func localizedFromAny(v any) (localized, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string:
		return localized{DefaultLanguage: x}, true
	case Text:
		return localized(x.Copy()), true
	case URL:
		return localized(x.Copy()), true
	}
	m, err := cast.ToStringMapStringE(v)
	if err != nil {
		return nil, false
	}
	return localized(m), true
}
