//go:build js && wasm

// Command wasm exposes the route planner to the browser via WebAssembly.
// After loading, it registers two global JavaScript functions:
//
//	planRoute(jsonString) -> jsonString
//	verifyRoute(jsonString) -> jsonString
//
// planRoute takes an engine.PlanInput and returns an engine.Result.
// verifyRoute takes an engine.VerifyInput and returns the final ship.ShipLog.
// Both always return a string; failures come back as {"error": "..."}.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/cxd309/waypoint-planner/internal/engine"
)

func main() {
	js.Global().Set("planRoute", jsonFunc(engine.RunJSON))
	js.Global().Set("verifyRoute", jsonFunc(engine.VerifyJSON))
	select {}
}

// jsonFunc adapts a string-to-JSON engine entry point to a JavaScript function.
func jsonFunc(fn func(string) (string, error)) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeString {
			return errorJSON("expected one JSON string argument")
		}
		out, err := fn(args[0].String())
		if err != nil {
			return errorJSON(err.Error())
		}
		return out
	})
}

func errorJSON(msg string) string {
	out, _ := json.Marshal(map[string]string{"error": msg})
	return string(out)
}
