// Package testconfig holds configuration types shared by the tests of the
// config packages, with their partials generated by layergen.
package testconfig

import "time"

//go:generate go run github.com/0xalexb/hjarta-config/cmd/layergen --type Sample,Nested,Service

// Sample mixes every plain field flavor with one nested field.
type Sample struct {
	WithDefaultFoo uint32 `default:"100"`
	OptionalBar    *string
	RequiredBaz    bool
	Nested         Nested `layer:"nested"`
}

// Nested is read from candidate environment variables.
type Nested struct {
	FooEnv         string  `default:"I am default foo!" env:"FOO"`
	BarEnvMultiple *uint32 `env:"SPECIFIC_BAR,BAR"`
}

// Service nests Sample and a hand-written partial.
type Service struct {
	Name     string        `env:"SERVICE_NAME"`
	Timeout  time.Duration `default:"5 * time.Second" env:"SERVICE_TIMEOUT"`
	Workers  uint32        `layer:"nested=MaxPartial"`
	Peers    []string      `env:"SERVICE_PEERS" yaml:"peer_list"`
	Sample   Sample        `layer:"nested"`
	Internal string        `layer:"-"`
}
