package platform

import (
	lua "github.com/yuin/gopher-lua"
)

// InjectPlatformTable publishes a read-only "platform" table into the Lua
// state. Configuration scripts use it to pick per-platform defaults, e.g.
//
//	bin_path = platform.is_windows and "~/micromamba/micromamba.exe" or "~/.local/bin/micromamba"
//
// The table carries the raw identifiers, the resolved artifact token (nil
// when the host is unsupported) and Linux distro details.
func InjectPlatformTable(L *lua.LState, info *Info) error {
	platformTable := L.NewTable()

	L.SetField(platformTable, "os", lua.LString(info.OS))
	L.SetField(platformTable, "arch", lua.LString(info.Arch))
	L.SetField(platformTable, "goos", lua.LString(info.GOOS))
	L.SetField(platformTable, "goarch", lua.LString(info.GOARCH))

	L.SetField(platformTable, "is_linux", lua.LBool(info.IsLinux()))
	L.SetField(platformTable, "is_macos", lua.LBool(info.IsMacOS()))
	L.SetField(platformTable, "is_windows", lua.LBool(info.IsWindows()))

	if target, err := info.Resolve(); err == nil {
		L.SetField(platformTable, "token", lua.LString(target.Token()))
	} else {
		L.SetField(platformTable, "token", lua.LNil)
	}

	if info.IsLinux() && info.Distro != "" {
		distroTable := L.NewTable()
		L.SetField(distroTable, "id", lua.LString(info.Distro))
		L.SetField(distroTable, "family", lua.LString(info.Family))
		L.SetField(distroTable, "version", lua.LString(info.Version))
		L.SetField(platformTable, "distro", distroTable)
	} else {
		L.SetField(platformTable, "distro", lua.LNil)
	}

	L.SetGlobal("platform", makeReadOnly(L, platformTable))

	return nil
}

// makeReadOnly returns a proxy table that reads through to table and raises
// on every write.
func makeReadOnly(L *lua.LState, table *lua.LTable) *lua.LTable {
	mt := L.NewTable()
	L.SetField(mt, "__index", table)
	L.SetField(mt, "__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("platform table is read-only and cannot be modified")
		return 0
	}))
	L.SetField(mt, "__metatable", lua.LString("protected"))

	proxy := L.NewTable()
	L.SetMetatable(proxy, mt)

	return proxy
}
