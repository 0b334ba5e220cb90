//go:build !(js && wasm)

package window

// DebugFromURL reports false outside the browser; desktop builds read the
// debug flag from the environment instead.
func DebugFromURL() bool {
	return debugFromQuery("")
}
