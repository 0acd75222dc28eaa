package shell

import (
	"context"
	"errors"
	"net/http"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"

	"github.com/domino14/wordladder/ladder"
)

const luaShellGlobal = "wordladder_shell"

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal(luaShellGlobal)
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

func luaError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

func resultTable(L *lua.LState, res *ladder.Result) *lua.LTable {
	path := L.NewTable()
	for i, w := range res.Path {
		path.RawSetInt(i+1, lua.LString(w))
	}
	t := L.NewTable()
	t.RawSetString("path", path)
	t.RawSetString("found", lua.LBool(res.Found))
	t.RawSetString("length", lua.LNumber(res.Length()))
	t.RawSetString("expanded", lua.LNumber(res.Expanded))
	t.RawSetString("strategy", lua.LString(res.Strategy.String()))
	return t
}

// Solve is ladder_solve(start, end [, strategy]).
func Solve(L *lua.LState) int {
	start := L.CheckString(1)
	end := L.CheckString(2)
	sc := getShell(L)
	if err := sc.requireDictionary(); err != nil {
		return luaError(L, err)
	}
	strategy := sc.options.strategy
	if L.GetTop() >= 3 {
		s, err := ladder.StrategyFromString(L.CheckString(3))
		if err != nil {
			return luaError(L, err)
		}
		strategy = s
	}
	ctx := L.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := sc.solver.Solve(ctx, start, end, strategy)
	if err != nil {
		log.Err(err).Msg("error-executing-ladder-solve")
		return luaError(L, err)
	}
	L.Push(resultTable(L, res))
	return 1
}

func Neighbors(L *lua.LState) int {
	word := L.CheckString(1)
	sc := getShell(L)
	t := L.NewTable()
	if sc.solver != nil {
		for i, nb := range sc.solver.Neighbors(word) {
			t.RawSetInt(i+1, lua.LString(nb))
		}
	}
	L.Push(t)
	return 1
}

func Check(L *lua.LState) int {
	word := L.CheckString(1)
	sc := getShell(L)
	L.Push(lua.LBool(sc.dict != nil && sc.dict.Contains(word)))
	return 1
}

func Load(L *lua.LState) int {
	sc := getShell(L)
	cmd := &shellcmd{cmd: "load", args: []string{L.CheckString(1)}, options: CmdOptions{}}
	if L.GetTop() >= 2 {
		cmd.options["encoding"] = []string{L.CheckString(2)}
	}
	r, err := sc.load(cmd)
	if err != nil {
		log.Err(err).Msg("error-executing-load")
		return luaError(L, err)
	}
	L.Push(lua.LString(r.message))
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	luajson.Preload(L)
	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{}).Loader)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal(luaShellGlobal, lsc)
	L.SetGlobal("ladder_solve", L.NewFunction(Solve))
	L.SetGlobal("ladder_neighbors", L.NewFunction(Neighbors))
	L.SetGlobal("ladder_check", L.NewFunction(Check))
	L.SetGlobal("ladder_load", L.NewFunction(Load))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	if L.GetTop() > 0 {
		if s, ok := L.Get(-1).(lua.LString); ok {
			return msg(string(s)), nil
		}
	}
	return nil, nil
}
