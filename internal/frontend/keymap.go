package frontend

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// keyLayout maps each logical key to a key of a QWERTY keyboard. The 4x4
// block 1234/QWER/ASDF/ZXCV keeps the arrangement of the hexadecimal
// keypad:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keyLayout = [chip8.KeyCount]rune{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

// runeKeys is the reverse of keyLayout indexed by ASCII character,
// -1 marks characters without a key.
var runeKeys = func() [128]int8 {
	var table [128]int8
	for i := range table {
		table[i] = -1
	}
	for key, r := range keyLayout {
		table[r] = int8(key)
	}
	return table
}()

// KeyForRune returns the logical key that the keyboard character maps to.
func KeyForRune(r rune) (chip8.Key, bool) {
	r = unicode.ToLower(r)
	if r < 0 || int(r) >= len(runeKeys) || runeKeys[r] < 0 {
		return 0, false
	}
	return chip8.Key(runeKeys[r]), true
}

// RuneForKey returns the keyboard character of the logical key.
func RuneForKey(key chip8.Key) rune {
	return keyLayout[key&0xF]
}
