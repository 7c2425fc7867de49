package renderer

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// Known-benign driver notification ids that would otherwise flood the log.
var ignoredMessageIDs = map[uint32]bool{
	131169: true,
	131185: true,
	131218: true,
	131204: true,
}

var debugSourceLabels = map[uint32]string{
	gl.DEBUG_SOURCE_API:             "API",
	gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "Window System",
	gl.DEBUG_SOURCE_SHADER_COMPILER: "Shader Compiler",
	gl.DEBUG_SOURCE_THIRD_PARTY:     "Third Party",
	gl.DEBUG_SOURCE_APPLICATION:     "Application",
	gl.DEBUG_SOURCE_OTHER:           "Other",
}

var debugTypeLabels = map[uint32]string{
	gl.DEBUG_TYPE_ERROR:               "Error",
	gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "Deprecated Behaviour",
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "Undefined Behaviour",
	gl.DEBUG_TYPE_PORTABILITY:         "Portability",
	gl.DEBUG_TYPE_PERFORMANCE:         "Performance",
	gl.DEBUG_TYPE_MARKER:              "Marker",
	gl.DEBUG_TYPE_PUSH_GROUP:          "Push Group",
	gl.DEBUG_TYPE_POP_GROUP:           "Pop Group",
	gl.DEBUG_TYPE_OTHER:               "Other",
}

var debugSeverityLabels = map[uint32]string{
	gl.DEBUG_SEVERITY_HIGH:         "high",
	gl.DEBUG_SEVERITY_MEDIUM:       "medium",
	gl.DEBUG_SEVERITY_LOW:          "low",
	gl.DEBUG_SEVERITY_NOTIFICATION: "notification",
}

func label(labels map[uint32]string, v uint32) string {
	if s, ok := labels[v]; ok {
		return s
	}
	return "Unknown"
}

// formatDebugMessage renders one driver message with decoded labels. It
// returns false for ids on the ignore list.
func formatDebugMessage(source, gltype, id, severity uint32, message string) (string, bool) {
	if ignoredMessageIDs[id] {
		return "", false
	}
	return fmt.Sprintf(
		"Debug message (%d): %s | Source: %s | Type: %s | Severity: %s",
		id, message,
		label(debugSourceLabels, source),
		label(debugTypeLabels, gltype),
		label(debugSeverityLabels, severity),
	), true
}

func onDebugMessage(source, gltype, id, severity uint32, length int32, message string, user unsafe.Pointer) {
	if msg, ok := formatDebugMessage(source, gltype, id, severity, message); ok {
		log.Print(msg)
	}
}

// RegisterDebugHandler turns on synchronous driver debug output and routes
// every message through the process log. Purely observational: the handler
// never changes control flow. Requires a context created with the debug
// flag; without one this stays disabled.
func RegisterDebugHandler() {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		log.Printf("Context has no debug flag, driver diagnostics stay disabled")
		return
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(onDebugMessage, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
}
