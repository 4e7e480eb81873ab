package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// script is a navigation scenario.
//
//	width = 1280
//	height = 800
//	split_capable = true
//
//	[[step]]
//	op = "present"
//	screen = "inbox"
//
//	[[step]]
//	op = "drag"
//	x = 5.0
//	y = 400.0
//	dx = 700.0
//	duration = "250ms"
type script struct {
	Width        int32  `toml:"width"`
	Height       int32  `toml:"height"`
	SplitCapable *bool  `toml:"split_capable"`
	Frame        string `toml:"frame"`
	Steps        []step `toml:"step"`

	frame time.Duration
}

type step struct {
	Op        string  `toml:"op"`
	Screen    string  `toml:"screen"`
	Title     string  `toml:"title"`
	Immediate bool    `toml:"immediate"`
	Split     bool    `toml:"split"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	DX        float64 `toml:"dx"`
	DY        float64 `toml:"dy"`
	Velocity  float64 `toml:"velocity"`
	Duration  string  `toml:"duration"`
	Moves     int     `toml:"moves"`
	Count     int     `toml:"count"`
	Offset    int     `toml:"offset"`
	Refuse    bool    `toml:"refuse"`
	// OpenPrevious is read by close; unset means true.
	OpenPrevious *bool `toml:"open_previous"`

	duration time.Duration
}

var knownOps = map[string]bool{
	"present":       true,
	"present_group": true,
	"next":          true,
	"next_inner":    true,
	"replace":       true,
	"close":         true,
	"back":          true,
	"remove":        true,
	"pop_until":     true,
	"pop_screens":   true,
	"orientation":   true,
	"drag":          true,
	"cancel":        true,
	"tick":          true,
	"settle":        true,
}

func loadScript(path string) (*script, error) {
	var s script
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return &s, s.normalize()
}

func parseScript(data string) (*script, error) {
	var s script
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, s.normalize()
}

func (s *script) normalize() error {
	if s.Width <= 0 {
		s.Width = 1280
	}
	if s.Height <= 0 {
		s.Height = 800
	}

	s.frame = 16 * time.Millisecond
	if s.Frame != "" {
		d, err := time.ParseDuration(s.Frame)
		if err != nil || d <= 0 {
			return fmt.Errorf("frame %q is not a positive duration", s.Frame)
		}
		s.frame = d
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		st.Op = strings.ToLower(strings.TrimSpace(st.Op))
		if !knownOps[st.Op] {
			return fmt.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
		if st.Duration != "" {
			d, err := time.ParseDuration(st.Duration)
			if err != nil || d < 0 {
				return fmt.Errorf("step %d: duration %q is not a valid duration", i+1, st.Duration)
			}
			st.duration = d
		}
		switch st.Op {
		case "present", "present_group", "next", "next_inner", "replace", "remove", "pop_until":
			if st.Screen == "" {
				return fmt.Errorf("step %d: %s needs a screen", i+1, st.Op)
			}
		case "drag":
			if st.Moves <= 0 {
				st.Moves = 8
			}
			if st.duration == 0 {
				st.duration = time.Duration(st.Moves) * s.frame
			}
		}
	}
	return nil
}
