package texttag

import "github.com/delaneyj/toolbelt"

var runePool = toolbelt.New(func() []rune { return make([]rune, 0, 256) })

// getRuneSlice returns an empty slice with room for at least n runes.
func getRuneSlice(n int) []rune {
	s := runePool.Get()
	if cap(s) < n {
		return make([]rune, 0, n)
	}
	return s[:0]
}

func putRuneSlice(s []rune) {
	if s == nil || cap(s) > 1<<16 {
		return
	}
	s = s[:0]
	runePool.Put(s)
}
