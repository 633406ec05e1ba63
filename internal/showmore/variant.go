package showmore

import "unicode/utf8"

// Separators placed between the text and the affix label.
const (
	collapsedSeparator = "... "
	expandedSeparator  = " "
)

// Span is a half-open rune index range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether rune index pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// AffixStyle describes how the clickable affix is drawn. It deliberately
// differs from default link styling: no underline despite being clickable.
type AffixStyle struct {
	Underline    bool
	Bold         bool
	Color        Color
	RelativeSize float64
}

// Variant is one precomputed rendering of the content.
type Variant struct {
	Text      string
	Affix     Span // End always equals the rune length of Text
	Clickable bool
	Style     AffixStyle
}

// AffixText returns the substring covered by the affix span.
func (v Variant) AffixText() string {
	if !v.Clickable {
		return ""
	}
	runes := []rune(v.Text)
	return string(runes[v.Affix.Start:v.Affix.End])
}

// Body returns the text preceding the affix, separator included.
func (v Variant) Body() string {
	runes := []rune(v.Text)
	return string(runes[:v.Affix.Start])
}

// RuneLen returns the number of runes in s. All indices in this package
// count runes, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// plainVariant is the unclickable rendering used below the threshold.
func plainVariant(text string) Variant {
	n := RuneLen(text)
	return Variant{Text: text, Affix: Span{Start: n, End: n}}
}

// buildVariants computes the collapsed and expanded renderings of text.
func buildVariants(text string, cfg Config) (collapsed, expanded Variant) {
	runes := []rune(text)
	if !cfg.Truncates(len(runes)) {
		v := plainVariant(text)
		return v, v
	}

	style := AffixStyle{
		Color:        cfg.AffixColor,
		RelativeSize: DefaultAffixSizeRatio,
	}

	head := string(runes[:cfg.MaxLength]) + collapsedSeparator
	collapsedText := head + cfg.MoreLabel
	collapsed = Variant{
		Text:      collapsedText,
		Affix:     Span{Start: cfg.MaxLength + RuneLen(collapsedSeparator), End: RuneLen(collapsedText)},
		Clickable: true,
		Style:     style,
	}

	expandedText := text + expandedSeparator + cfg.LessLabel
	expanded = Variant{
		Text:      expandedText,
		Affix:     Span{Start: len(runes) + RuneLen(expandedSeparator), End: RuneLen(expandedText)},
		Clickable: true,
		Style:     style,
	}
	return collapsed, expanded
}
