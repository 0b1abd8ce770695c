package main

import "flag"

// Command-line flags. Anything not set here comes from the config file.
var (
	// configFlag points at a JSON or YAML scene file.
	configFlag = flag.String("config", "data/scene.yaml", "scene and perception config (.json or .yaml)")

	// logLevelFlag sets the logrus level.
	logLevelFlag = flag.String("log-level", "info", "log level (debug, info, warn, error)")

	// debugFlag starts with the cone overlay visible.
	debugFlag = flag.Bool("debug", false, "show the field of view overlay at start (toggle with F1)")

	// listFlag prints the scenes found in the data directory and exits.
	listFlag = flag.Bool("list", false, "list scene files in the data directory and exit")

	// fovDegreesFlag overrides the configured view angle when positive.
	fovDegreesFlag = flag.Float64("fov-deg", 0, "full view angle in degrees, overrides the config when > 0")
)
