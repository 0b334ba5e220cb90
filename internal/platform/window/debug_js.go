//go:build js && wasm

package window

import "syscall/js"

// DebugFromURL reports whether the page was opened with ?debug=true.
func DebugFromURL() bool {
	return debugFromQuery(js.Global().Get("location").Get("search").String())
}
