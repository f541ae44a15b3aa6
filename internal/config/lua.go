package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

const (
	luaGlobalInstall = "install"

	luaCallStackSize = 256
	luaRegistrySize  = 8 * 1024

	// MaxLuaConfigSize bounds the size of a Lua configuration file.
	MaxLuaConfigSize = 1 << 20

	// DefaultLuaTimeout applies when the context carries no deadline.
	DefaultLuaTimeout = 5 * time.Second
)

// ParseError reports a Lua configuration that failed to run or has the
// wrong shape.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// LuaCollector answers the questions from the global "install" table of a
// Lua script. The script is evaluated once, when the collector is created.
type LuaCollector struct {
	answers map[string]lua.LValue
}

// LoadLuaCollector reads and evaluates the Lua file at path.
func LoadLuaCollector(ctx context.Context, path string, info *platform.Info) (*LuaCollector, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat lua config: %w", err)
	}
	if fi.Size() > MaxLuaConfigSize {
		return nil, &ParseError{
			Message: "config file too large",
			Detail:  fmt.Sprintf("%s is %d bytes, limit is %d", path, fi.Size(), MaxLuaConfigSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lua config: %w", err)
	}
	return NewLuaCollector(ctx, string(data), info)
}

// NewLuaCollector evaluates luaCode in a sandboxed VM. When info is non-nil
// a read-only "platform" table is available to the script.
func NewLuaCollector(ctx context.Context, luaCode string, info *platform.Info) (*LuaCollector, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultLuaTimeout)
		defer cancel()
	}

	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if info != nil {
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("evaluate lua config: %w", ctxErr)
		}
		return nil, &ParseError{
			Message: "Lua error",
			Detail:  trimTraceback(err.Error()),
		}
	}

	return extractAnswers(L)
}

func extractAnswers(L *lua.LState) (*LuaCollector, error) {
	global := L.GetGlobal(luaGlobalInstall)
	switch global.Type() {
	case lua.LTNil:
		return &LuaCollector{answers: map[string]lua.LValue{}}, nil
	case lua.LTTable:
	default:
		return nil, &ParseError{
			Message: "invalid 'install' table",
			Detail:  fmt.Sprintf("expected table, got %s", global.Type()),
		}
	}

	table := global.(*lua.LTable)
	answers := make(map[string]lua.LValue, 4)
	for _, key := range []string{KeyRootPrefix, KeyInitShell, KeyShell, KeyBinPath} {
		val := table.RawGetString(key)
		switch val.Type() {
		case lua.LTNil:
			continue
		case lua.LTString:
		case lua.LTBool:
			if key != KeyInitShell {
				return nil, &ParseError{
					Message: fmt.Sprintf("invalid install.%s", key),
					Detail:  "expected string, got boolean",
				}
			}
		default:
			return nil, &ParseError{
				Message: fmt.Sprintf("invalid install.%s", key),
				Detail:  fmt.Sprintf("expected string, got %s", val.Type()),
			}
		}
		answers[key] = val
	}

	return &LuaCollector{answers: answers}, nil
}

func (c *LuaCollector) str(key string) string {
	if v, ok := c.answers[key]; ok && v.Type() == lua.LTString {
		return v.String()
	}
	return ""
}

// RootPrefix implements Collector.
func (c *LuaCollector) RootPrefix() (string, error) {
	return ParseRootPrefix(c.str(KeyRootPrefix)), nil
}

// InitShell implements Collector. The value may be a Lua boolean or a y/n
// string.
func (c *LuaCollector) InitShell() (bool, error) {
	if v, ok := c.answers[KeyInitShell]; ok && v.Type() == lua.LTBool {
		return lua.LVAsBool(v), nil
	}
	return ParseInitShell(c.str(KeyInitShell))
}

// AskForShell implements Collector.
func (c *LuaCollector) AskForShell() (string, error) {
	return ParseShell(c.str(KeyShell))
}

// BinPath implements Collector.
func (c *LuaCollector) BinPath(p platform.Platform) (string, error) {
	return ParseBinPath(c.str(KeyBinPath), p), nil
}

// trimTraceback drops the Lua stack traceback from an error message.
func trimTraceback(detail string) string {
	if idx := strings.Index(detail, "stack traceback"); idx > 0 {
		return strings.TrimSpace(detail[:idx])
	}
	return detail
}
