package gfx

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/voxconsole/vox/internal/logger"
)

// HasExtension reports whether the current context advertises ext.
func HasExtension(ext string) bool {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))) == ext {
			return true
		}
	}
	return false
}

// EnableDebugOutput routes GL debug messages to the logger. It reports false
// when the context does not support KHR_debug.
func EnableDebugOutput() bool {
	if !HasExtension("GL_KHR_debug") {
		logger.Warn("GL debug output unavailable", zap.String("extension", "GL_KHR_debug"))
		return false
	}

	log := logger.Named("gl")
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		log.Log(debugLevel(severity), message,
			zap.String("source", debugSource(source)),
			zap.Uint32("type", gltype),
			zap.Uint32("id", id))
	}, nil)
	return true
}

func debugLevel(severity uint32) zapcore.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return zapcore.ErrorLevel
	case gl.DEBUG_SEVERITY_MEDIUM:
		return zapcore.WarnLevel
	case gl.DEBUG_SEVERITY_LOW:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

func debugSource(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third-party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	}
	return "other"
}
