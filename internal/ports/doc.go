// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the rotation core and the outside world.
// They define what the application needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [WallpaperProber]: Asks the display tool which image is shown
//   - [WallpaperSetter]: Asks the display tool to show an image
//   - [Display]: Both of the above, as provided by a single tool
//   - [CommandRunner]: Runs an external program and captures its output
//   - [TriggerSource]: Delivers out-of-band "rotate now" requests
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (swww, os/exec, signals, fsnotify, zerolog).
package ports
