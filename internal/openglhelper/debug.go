package openglhelper

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Driver message ids that only report buffer placement
var ignoredDebugMessages = []uint32{131185}

// EnableDebugOutput installs a synchronous debug message callback that logs
// every driver message. The driver must have granted a debug context.
func (w *Window) EnableDebugOutput() {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		log.Println("warning: debug context requested but not provided by the driver")
		return
	}

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		log.Println(formatDebugMessage(source, gltype, id, severity, message))
	}, nil)
	gl.DebugMessageControl(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_OTHER, gl.DONT_CARE,
		int32(len(ignoredDebugMessages)), &ignoredDebugMessages[0], false)
}

func formatDebugMessage(source, gltype, id, severity uint32, message string) string {
	var severityStr, typeStr, sourceStr string

	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "HIGH"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "MEDIUM"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "LOW"
	default:
		severityStr = "NOTIFICATION"
	}

	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "ERROR"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "DEPRECATED_BEHAVIOR"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "UNDEFINED_BEHAVIOR"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "PORTABILITY"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "PERFORMANCE"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "MARKER"
	default:
		typeStr = "OTHER"
	}

	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "WINDOW_SYSTEM"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "SHADER_COMPILER"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "THIRD_PARTY"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "APPLICATION"
	default:
		sourceStr = "OTHER"
	}

	return fmt.Sprintf("gl debug [%s] %s #%d from %s: %s", severityStr, typeStr, id, sourceStr, message)
}
