package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles and log fields.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case len(Commit) >= 7 && Commit != "unknown":
		return Commit[:7]
	default:
		return "dev"
	}
}

// String is the full identifier printed by -version.
func String() string {
	return "shuriken " + Version + " (" + Commit + ", " + Date + ")"
}
