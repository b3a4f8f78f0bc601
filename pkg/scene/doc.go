// Package scene loads small node scenes used as render input by the CLI and
// the HTTP server.
//
// A scene file is TOML. Nodes name a registered model and an origin;
// connections and drafts reference ports as "node:index", where the index
// counts output ports on the from side and input ports on the to side:
//
//	[[node]]
//	id = "a"
//	model = "IntegerSource"
//	x = 0
//	y = 0
//
//	[[node]]
//	id = "sum"
//	model = "Addition"
//	x = 240
//	y = 0
//
//	[[connection]]
//	from = "a:0"
//	to = "sum:1"
//	selected = true
//
//	[[draft]]
//	from = "sum:0"
//	end = [520, 40]
//
// [Build] instantiates the models through a [nodes.ModelRegistry] and
// creates the connections. A connection whose types are incompatible does not
// fail the build; it is kept in [Scene.Rejected] with its reason.
//
// Scenes are not an editor document format. They carry no undo history and
// are never written back.
package scene
