package java

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPackage is the package of generated classes when none is given.
const DefaultPackage = "com.example.model"

// Access is a Jackson JsonProperty.Access mode.
type Access string

// Access modes. AccessUnset omits the access attribute.
const (
	AccessUnset     Access = ""
	AccessReadOnly  Access = "READ_ONLY"
	AccessWriteOnly Access = "WRITE_ONLY"
	AccessReadWrite Access = "READ_WRITE"
	AccessAuto      Access = "AUTO"
)

// AccessModes lists the accepted access modes.
var AccessModes = []Access{AccessReadOnly, AccessWriteOnly, AccessReadWrite, AccessAuto}

// ParseAccess parses an access mode. Matching ignores case and treats "-"
// as "_"; the empty string is AccessUnset.
func ParseAccess(s string) (Access, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if normalized == "" {
		return AccessUnset, nil
	}
	for _, a := range AccessModes {
		if string(a) == normalized {
			return a, nil
		}
	}
	names := make([]string, len(AccessModes))
	for i, a := range AccessModes {
		names[i] = string(a)
	}
	return AccessUnset, fmt.Errorf("invalid access modifier %q (options: %s)", s, strings.Join(names, ", "))
}

// Options controls rendering.
type Options struct {
	Package string // Java package of the generated classes
	Access  Access // JsonProperty access mode
	Getters bool   // emit getters
	Setters bool   // emit setters
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{Package: DefaultPackage}
}

var packagePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

// Validate checks the package name and access mode.
func (o Options) Validate() error {
	if !packagePattern.MatchString(o.Package) {
		return fmt.Errorf("invalid Java package name %q", o.Package)
	}
	if _, err := ParseAccess(string(o.Access)); err != nil {
		return err
	}
	return nil
}
