// Package config loads the demo configuration: the greeting, the message
// to clean up, and the arithmetic steps to run.
//
// Configs may be written in CUE or YAML. Both are validated against the
// embedded #Demo schema; fields left out keep the values from Default.
package config

import (
	"fmt"

	"github.com/roach88/calcdemo/internal/mathutil"
)

// Step is one operation the demo evaluates.
type Step struct {
	Op mathutil.Op `json:"op" yaml:"op"`
	A  int32       `json:"a" yaml:"a"`
	B  int32       `json:"b" yaml:"b"`
}

func (s Step) String() string {
	return fmt.Sprintf("%d %s %d", s.A, s.Op.Symbol(), s.B)
}

// Demo is the full demo configuration.
type Demo struct {
	Greeting string `json:"greeting"`
	Message  string `json:"message"`
	Steps    []Step `json:"steps"`
}

// Default returns the configuration used when no file is given.
func Default() Demo {
	return Demo{
		Greeting: "Hello Maven World!",
		Message:  "  maven tutorial  ",
		Steps: []Step{
			{Op: mathutil.OpAdd, A: 5, B: 3},
		},
	}
}

// overrides mirrors Demo with optional fields for decoding.
type overrides struct {
	Greeting *string `json:"greeting"`
	Message  *string `json:"message"`
	Steps    *[]Step `json:"steps"`
}

func (o overrides) apply(d Demo) Demo {
	if o.Greeting != nil {
		d.Greeting = *o.Greeting
	}
	if o.Message != nil {
		d.Message = *o.Message
	}
	if o.Steps != nil {
		d.Steps = append([]Step{}, (*o.Steps)...)
	}
	return d
}
