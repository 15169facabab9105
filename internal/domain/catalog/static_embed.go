package catalog

import _ "embed"

//go:embed data/recovery.yaml
var recoveryYAML []byte

//go:embed data/events.yaml
var eventsYAML []byte

//go:embed data/challenges.yaml
var challengesYAML []byte

//go:embed data/afflictions.yaml
var afflictionsYAML []byte

//go:embed data/rivals.yaml
var rivalsYAML []byte

//go:embed data/bowlers.yaml
var bowlersYAML []byte
