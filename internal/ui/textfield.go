package ui

import "unicode"

// TextField collects a short line of typed text.
type TextField struct {
	Value string
	Max   int
}

// Append adds printable runes, dropping anything past Max.
func (f *TextField) Append(rs []rune) {
	cur := []rune(f.Value)
	for _, r := range rs {
		if !unicode.IsPrint(r) {
			continue
		}
		if f.Max > 0 && len(cur) >= f.Max {
			break
		}
		cur = append(cur, r)
	}
	f.Value = string(cur)
}

// Backspace removes the last rune.
func (f *TextField) Backspace() {
	cur := []rune(f.Value)
	if len(cur) == 0 {
		return
	}
	f.Value = string(cur[:len(cur)-1])
}

func (f *TextField) Reset() { f.Value = "" }
