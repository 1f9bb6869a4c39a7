package config

import "errors"

var (
	// ErrReadConfig is returned when a .pls.yml file cannot be read.
	ErrReadConfig = errors.New("read config file")
	// ErrParseConfig is returned when a .pls.yml file is not valid YAML.
	ErrParseConfig = errors.New("parse config file")
	// ErrSpecSelector is returned when a node spec does not have exactly
	// one of name, extension or pattern.
	ErrSpecSelector = errors.New("node spec needs exactly one of name, extension or pattern")
	// ErrSpecPattern is returned when a node spec pattern is not a valid
	// regular expression.
	ErrSpecPattern = errors.New("compile node spec pattern")
	// ErrSpecImportance is returned when a node spec importance is
	// outside the supported range.
	ErrSpecImportance = errors.New("node spec importance must be between -2 and 2")
)
