package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultCourseID    = "CS 4500"
	DefaultOutputFile  = "ValidityChecks.txt"
	DefaultFilePattern = `^[A-Za-z]+Log\.csv$`
)

// Config holds run configuration loaded from .logcheck.yaml.
type Config struct {
	CourseID        string          `yaml:"course_id"         json:"course_id"`
	OutputFile      string          `yaml:"output_file"       json:"output_file"`
	FilePattern     string          `yaml:"file_pattern"      json:"file_pattern"`
	DropEmptyFields bool            `yaml:"drop_empty_fields" json:"drop_empty_fields"`
	GroupSize       GroupSizeConfig `yaml:"group_size"        json:"group_size"`
	MaxNoteLength   int             `yaml:"max_note_length"   json:"max_note_length"`
	LongSpanMinutes int             `yaml:"long_span_minutes" json:"long_span_minutes"`
}

// GroupSizeConfig bounds the group size field, inclusive.
type GroupSizeConfig struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// DefaultConfig returns the configuration of the published log format.
func DefaultConfig() Config {
	return Config{
		CourseID:    DefaultCourseID,
		OutputFile:  DefaultOutputFile,
		FilePattern: DefaultFilePattern,
		GroupSize: GroupSizeConfig{
			Min: DefaultMinGroupSize,
			Max: DefaultMaxGroupSize,
		},
		MaxNoteLength:   DefaultMaxNoteLength,
		LongSpanMinutes: DefaultLongSpanMinutes,
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CourseID) == "" {
		return fmt.Errorf("course_id must not be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	if strings.ContainsAny(c.OutputFile, `/\`) {
		return fmt.Errorf("output_file %q must be a bare file name", c.OutputFile)
	}
	if _, err := regexp.Compile(c.FilePattern); err != nil {
		return fmt.Errorf("file_pattern %q: %w", c.FilePattern, err)
	}
	if c.GroupSize.Min < 1 {
		return fmt.Errorf("group_size.min must be >= 1 (got %d)", c.GroupSize.Min)
	}
	if c.GroupSize.Max < c.GroupSize.Min {
		return fmt.Errorf("group_size.max %d is below group_size.min %d", c.GroupSize.Max, c.GroupSize.Min)
	}
	if c.MaxNoteLength <= 0 {
		return fmt.Errorf("max_note_length must be > 0 (got %d)", c.MaxNoteLength)
	}
	if c.LongSpanMinutes <= 0 {
		return fmt.Errorf("long_span_minutes must be > 0 (got %d)", c.LongSpanMinutes)
	}
	return nil
}

// Rules returns the entry-validator limits carried by the config.
func (c Config) Rules() Rules {
	return Rules{
		MinGroupSize:    c.GroupSize.Min,
		MaxGroupSize:    c.GroupSize.Max,
		MaxNoteLength:   c.MaxNoteLength,
		LongSpanMinutes: c.LongSpanMinutes,
	}
}

// MatchesLogFileName reports whether name follows the log naming pattern.
// An invalid pattern matches nothing; Validate reports it.
func (c Config) MatchesLogFileName(name string) bool {
	re, err := regexp.Compile(c.FilePattern)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}
