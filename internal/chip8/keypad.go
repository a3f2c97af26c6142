package chip8

// KeyCount is the number of logical keys of the hexadecimal keypad.
const KeyCount = 16

// Key is a logical key of the hexadecimal keypad, 0x0-0xF.
type Key uint8

// Input is the keypad port of the machine. Implementations map physical
// input devices to the 16 logical keys.
type Input interface {
	// KeyDown returns whether the key is currently held.
	KeyDown(key Key) bool
	// KeyReleased returns a key that was released during the current
	// frame, if any. Each release is reported once.
	KeyReleased() (Key, bool)
}

// Keypad is an Input that frontends and tests update directly.
// Releases are collected per frame and discarded by EndFrame.
type Keypad struct {
	down     [KeyCount]bool
	released uint16
}

// NewKeypad returns a keypad with all keys up.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press marks the key as held.
func (k *Keypad) Press(key Key) {
	k.down[key&0xF] = true
}

// Release marks the key as up and records a release event if it was held.
func (k *Keypad) Release(key Key) {
	key &= 0xF
	if k.down[key] {
		k.released |= 1 << key
	}
	k.down[key] = false
}

// Set presses or releases the key depending on the held state.
func (k *Keypad) Set(key Key, held bool) {
	if held {
		k.Press(key)
	} else {
		k.Release(key)
	}
}

// KeyDown implements Input.
func (k *Keypad) KeyDown(key Key) bool {
	return k.down[key&0xF]
}

// KeyReleased implements Input, it returns the lowest released key.
func (k *Keypad) KeyReleased() (Key, bool) {
	for key := range Key(KeyCount) {
		if k.released&(1<<key) != 0 {
			k.released &^= 1 << key
			return key, true
		}
	}
	return 0, false
}

// EndFrame discards release events that were not consumed in this frame.
func (k *Keypad) EndFrame() {
	k.released = 0
}
