package pdf

import (
	"fmt"
	"strings"
)

// DisplayString converts an arbitrary scalar to a display string. It is the
// universal fallback used wherever a metadata value is surfaced to a human or
// to JSON, and it never fails:
// - nil becomes the empty string
// - byte sequences decode as UTF-8 with replacement runes for bad sequences
// - everything else uses its default string representation
func DisplayString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToValidUTF8(x, "�")
	case []byte:
		return strings.ToValidUTF8(string(x), "�")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
