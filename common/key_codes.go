package common

import "strconv"

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyUnknown Key = 0

	KeyW Key = 87 // W key (ASCII)
	KeyA Key = 65 // A key (ASCII)
	KeyS Key = 83 // S key (ASCII)
	KeyD Key = 68 // D key (ASCII)
	KeyQ Key = 81 // Q key (ASCII)
	KeyE Key = 69 // E key (ASCII)
	KeyZ Key = 90 // Z key (ASCII)
	KeyX Key = 88 // X key (ASCII)
	KeyC Key = 67 // C key (ASCII)
	KeyG Key = 71 // G key (ASCII)

	KeyEqual Key = 61 // = / + key (ASCII)
	KeyMinus Key = 45 // - key (ASCII)

	KeyEsc   Key = 256 // Escape key (GLFW)
	KeyRight Key = 262 // Right arrow (GLFW)
	KeyLeft  Key = 263 // Left arrow (GLFW)
	KeyDown  Key = 264 // Down arrow (GLFW)
	KeyUp    Key = 265 // Up arrow (GLFW)

	KeyKPSubtract Key = 333 // Keypad - (GLFW)
	KeyKPAdd      Key = 334 // Keypad + (GLFW)
)

// keyNames maps the keys the viewer cares about to the names used for subscribers and
// overlay controls. Arrow names follow the DOM KeyboardEvent.key convention.
var keyNames = map[Key]string{
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
	KeyQ:          "q",
	KeyE:          "e",
	KeyZ:          "z",
	KeyX:          "x",
	KeyC:          "c",
	KeyG:          "g",
	KeyEqual:      "=",
	KeyMinus:      "-",
	KeyEsc:        "Escape",
	KeyRight:      "ArrowRight",
	KeyLeft:       "ArrowLeft",
	KeyDown:       "ArrowDown",
	KeyUp:         "ArrowUp",
	KeyKPSubtract: "-",
	KeyKPAdd:      "+",
}

// Name returns the key's stable name, or an empty string for keys without one.
//
// Returns:
//   - string: the key name (e.g. "w", "ArrowUp")
func (k Key) Name() string {
	return keyNames[k]
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// KeyByName resolves a key name back to its code. Keypad aliases are never returned.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - Key: the key code
//   - bool: false if no key carries the name
func KeyByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && k != KeyKPSubtract {
			return k, true
		}
	}
	return KeyUnknown, false
}
