package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxLuaVM removes the parts of the standard Lua environment that can
// touch the process, the filesystem or load other code. string, table and
// math stay available along with the basic functions.
func sandboxLuaVM(L *lua.LState) {
	// os.execute, os.exit, os.getenv
	L.SetGlobal("os", lua.LNil)

	// io.open, io.popen
	L.SetGlobal("io", lua.LNil)

	L.SetGlobal("require", lua.LNil)
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	L.SetGlobal("load", lua.LNil)
	L.SetGlobal("loadstring", lua.LNil)

	L.SetGlobal("debug", lua.LNil)
}

// newSandboxedVM creates a Lua state with sandboxLuaVM applied and a
// bounded call stack.
func newSandboxedVM() *lua.LState {
	L := lua.NewState(lua.Options{
		CallStackSize: luaCallStackSize,
		RegistrySize:  luaRegistrySize,
	})
	sandboxLuaVM(L)
	return L
}
