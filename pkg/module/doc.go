// Package module loads endpoint files as tables of named exports.
//
// A Module is the Go equivalent of a dynamically imported source file: an
// ordered mapping from export name to value. Route matchers inspect the
// names and take handlers straight from the values.
//
// # Loaders
//
// Go cannot import source files at run time, so loading goes through the
// Loader interface:
//
//   - Registry: endpoint files register their exports from init(), keyed by
//     their own source path (see Export and Default).
//   - PluginLoader: opens Go plugins (.so) with the plugin package.
//   - Static: a fixed path → module table, for tests and embedding.
//   - ExtLoader: picks one of the above by file extension.
//
// # Registering exports
//
//	// api/endpoints/users/_id/index.go
//	package user
//
//	func init() {
//	    module.Export("get", http.HandlerFunc(show))
//	    module.Export("put", http.HandlerFunc(update))
//	}
//
//	// api/endpoints/health/get.go
//	func init() { module.Default(http.HandlerFunc(health)) }
//
// A .go file named like a parameter (users/_id.go) never compiles: the go
// tool ignores files beginning with "_" or ".". Use a parameter directory
// as above, or build the file as a plugin (users/_id.so).
package module
