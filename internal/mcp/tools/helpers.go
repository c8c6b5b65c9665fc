// Package tools contains MCP tool implementations for jackgen.
package tools

import (
	"fmt"
	"strings"

	"github.com/usestring/jackgen/internal/render/java"
)

// MIME type constants.
const (
	MimeJSON = "application/json"
	MimeJava = "text/x-java-source"
)

// ClassResourceScheme prefixes class source resource URIs.
const ClassResourceScheme = "jackgen://class/"

// ClassResourceURI returns the resource URI of a class rendered by the
// generation identified by digest.
func ClassResourceURI(digest, class string) string {
	return ClassResourceScheme + digest + "/" + class
}

// ParseClassResourceURI splits a class resource URI into digest and class.
func ParseClassResourceURI(uri string) (digest, class string, err error) {
	rest, ok := strings.CutPrefix(uri, ClassResourceScheme)
	if !ok {
		return "", "", ErrInvalidInput(fmt.Sprintf("invalid resource URI: %s", uri))
	}
	digest, class, ok = strings.Cut(rest, "/")
	if !ok || digest == "" || class == "" {
		return "", "", ErrInvalidInput("class URI requires digest and class name")
	}
	return digest, class, nil
}

// renderOptions merges tool arguments over the configured defaults.
// Nil getters or setters keep the configured value.
func (d *Deps) renderOptions(pkg, access string, getters, setters *bool) (java.Options, error) {
	opts := java.DefaultOptions()
	if d.Config != nil {
		opts.Package = d.Config.Package
		access = firstNonEmpty(access, d.Config.Access)
		opts.Getters = d.Config.Getters
		opts.Setters = d.Config.Setters
	}
	if pkg != "" {
		opts.Package = pkg
	}
	if getters != nil {
		opts.Getters = *getters
	}
	if setters != nil {
		opts.Setters = *setters
	}

	a, err := java.ParseAccess(access)
	if err != nil {
		return java.Options{}, ErrInvalidInput(err.Error())
	}
	opts.Access = a

	if err := opts.Validate(); err != nil {
		return java.Options{}, ErrInvalidInput(err.Error())
	}
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
