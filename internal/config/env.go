package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/setanarut/palettizer"
)

// env reads prefixed variables into settings. A variable may instead name
// a file through NAME_FILE, whose trimmed contents are used as the value.
// Set but unparsable values are collected and reported together.
type env struct {
	prefix string
	errs   []error
}

func (e *env) lookup(name string) (string, bool) {
	key := e.prefix + name
	if val := os.Getenv(key); val != "" {
		return val, true
	}
	path := os.Getenv(key + "_FILE")
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s_FILE: %w", key, err))
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func (e *env) fail(name, val, want string) {
	e.errs = append(e.errs, fmt.Errorf("%w: %s%s=%q is not %s",
		palettizer.ErrInvalidOptions, e.prefix, name, val, want))
}

func (e *env) setString(name string, dst *string) {
	if val, ok := e.lookup(name); ok {
		*dst = val
	}
}

func (e *env) setInt(name string, dst *int) {
	val, ok := e.lookup(name)
	if !ok {
		return
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		e.fail(name, val, "an integer")
		return
	}
	*dst = i
}

func (e *env) setFloat(name string, dst *float64) {
	val, ok := e.lookup(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		e.fail(name, val, "a number")
		return
	}
	*dst = f
}

// setBool accepts strconv.ParseBool values plus yes/no and y/n.
func (e *env) setBool(name string, dst *bool) {
	val, ok := e.lookup(name)
	if !ok {
		return
	}
	switch strings.ToLower(val) {
	case "y", "yes":
		*dst = true
		return
	case "n", "no":
		*dst = false
		return
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		e.fail(name, val, "a boolean")
		return
	}
	*dst = b
}

// setList splits on commas and drops empty items.
func (e *env) setList(name string, dst *[]string) {
	val, ok := e.lookup(name)
	if !ok {
		return
	}
	var out []string
	for item := range strings.SplitSeq(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}

func (e *env) err() error {
	return errors.Join(e.errs...)
}
