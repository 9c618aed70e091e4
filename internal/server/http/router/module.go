package router

import "go.uber.org/fx"

// Module wires the gin engine into the application graph.
var Module = fx.Provide(Setup)
