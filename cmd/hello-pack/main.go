// Command hello-pack is the template Builder pack. Loaded by the host it
// answers the greet export; run standalone it prints two fixed lines and
// exits.
//
// Build for host loading (reactor mode - exports stay callable after
// instantiation, main never runs):
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o hello-pack.wasm ./cmd/hello-pack
//
// Invoke locally:
//
//	pack-host -manifest cmd/hello-pack/pack.yaml World
//
// Built without -buildmode=c-shared the same source is a plain command
// for standalone runs: main prints its two lines and exits, and the
// host refuses to load it because the exited instance cannot answer
// greet.
package main

import (
	"fmt"
	"os"

	"github.com/RachEma-ux/pack-sdk/greeting"
	_ "github.com/RachEma-ux/pack-sdk/log" // route slog to stderr, keeping stdout clean
	"github.com/RachEma-ux/pack-sdk/pack"
)

// Registration happens in init so the greet export is live in reactor
// builds too, where main never runs.
func init() {
	pack.Register(greeting.New(os.Stdout))
}

func main() {
	fmt.Println("Hello from WASM Pack!")
	fmt.Println("This is a template pack for the Builder mobile orchestration system.")
}
