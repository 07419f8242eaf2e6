package version

import "fmt"

const Name = "Kilo Editor"

var (
	Version   = "0.0.1"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetCommit() string {
	return Commit
}

func GetBuildTime() string {
	return BuildTime
}

func GetFullVersion() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}

// Banner is the welcome line shown when no file is loaded.
func Banner() string {
	return fmt.Sprintf("%s -- version %s", Name, Version)
}
