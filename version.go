package aether

// Version is the interpreter release identifier shown by the CLI.
const Version = "1.0.0"

// BuildDate is stamped by the release build via
// -ldflags "-X github.com/SpideyBash4116/Aether.BuildDate=...".
var BuildDate = "unknown"
