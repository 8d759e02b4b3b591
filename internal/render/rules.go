package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/geoql/internal/types"
)

// RuleKind distinguishes plain-function rules from method-call rules.
type RuleKind int

const (
	RuleFunction RuleKind = iota // Name(args...)
	RuleMethod                   // receiver.Name(args...)
	RuleProperty                 // receiver.Name
)

// Rule describes how one canonical function is rendered by a dialect.
type Rule struct {
	Name     string
	Receiver types.GeometryKind // method and property rules only
	Kind     RuleKind
}

// Function creates a plain-function rule.
func Function(name string) Rule {
	return Rule{Kind: RuleFunction, Name: name}
}

// Method creates a method-call rule invoked on a receiver of the given kind.
func Method(name string, receiver types.GeometryKind) Rule {
	return Rule{Kind: RuleMethod, Name: name, Receiver: receiver}
}

// Property creates a rule for a receiver property such as STX, which
// SQL Server exposes without parentheses.
func Property(name string, receiver types.GeometryKind) Rule {
	return Rule{Kind: RuleProperty, Name: name, Receiver: receiver}
}

func (r Rule) String() string {
	switch r.Kind {
	case RuleMethod:
		return fmt.Sprintf("method %s on %s", r.Name, r.Receiver)
	case RuleProperty:
		return fmt.Sprintf("property %s on %s", r.Name, r.Receiver)
	default:
		return "function " + r.Name
	}
}

// Validate checks the rule's shape.
func (r Rule) Validate() error {
	switch r.Kind {
	case RuleFunction:
		if !isValidFunctionName(r.Name) {
			return fmt.Errorf("invalid function name %q", r.Name)
		}
	case RuleMethod, RuleProperty:
		if !isValidIdentifier(r.Name) {
			return fmt.Errorf("invalid method name %q", r.Name)
		}
		if _, ok := types.ParseGeometryKind(string(r.Receiver)); !ok {
			return fmt.Errorf("method %s needs a geometry receiver marker, got %q", r.Name, r.Receiver)
		}
	default:
		return fmt.Errorf("unknown rule kind %d", r.Kind)
	}
	return nil
}

// Mapping maps canonical function names to dialect rules.
type Mapping map[string]Rule

// Merge returns a new mapping containing m overlaid by others in order.
// For a name present in several mappings the last one wins.
func (m Mapping) Merge(others ...Mapping) Mapping {
	out := make(Mapping, len(m))
	for name, rule := range m {
		out[name] = rule
	}
	for _, other := range others {
		for name, rule := range other {
			out[name] = rule
		}
	}
	return out
}

// Names returns the canonical names in sorted order.
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every entry and returns the first problem found.
func (m Mapping) Validate() error {
	for _, name := range m.Names() {
		if !isValidIdentifier(name) {
			return NewConfigError(name, "canonical name must be a valid identifier")
		}
		if err := m[name].Validate(); err != nil {
			return NewConfigError(name, err.Error())
		}
	}
	return nil
}

// SplitMode selects how method-call rules separate receiver and arguments.
type SplitMode int

const (
	// SplitArguments takes the receiver and arguments from the list of
	// individually compiled arguments.
	SplitArguments SplitMode = iota
	// SplitLegacy joins the compiled arguments, splits the text on every
	// comma and keeps only the first two segments. Arguments that contain
	// commas themselves are split incorrectly.
	SplitLegacy
)

// RegisterMapping validates the whole mapping, then registers one hook per
// canonical name. Nothing is registered if any rule is malformed.
func RegisterMapping(reg *Registry, dialect string, m Mapping, mode SplitMode) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for _, name := range m.Names() {
		rule := m[name]
		hook := Hook{Compile: CompileRule(rule, mode), Source: rule.String()}
		if err := reg.Register(dialect, name, hook); err != nil {
			return err
		}
	}

	reg.Logger().WithFields(logrus.Fields{
		"dialect":   dialect,
		"functions": len(m),
	}).Debug("registered function mapping")
	return nil
}

// CompileRule builds the compile hook for a rule.
func CompileRule(rule Rule, mode SplitMode) CompileFunc {
	switch rule.Kind {
	case RuleProperty:
		return func(call Call, c *Compiler) (string, error) {
			args, err := c.CompileArgs(call)
			if err != nil {
				return "", err
			}
			return RenderProperty(c.Dialect().Name(), call.Node.Name, rule.Name, args)
		}
	case RuleMethod:
		return func(call Call, c *Compiler) (string, error) {
			args, err := c.CompileArgs(call)
			if err != nil {
				return "", err
			}
			if mode == SplitLegacy {
				return RenderMethodLegacy(c.Dialect().Name(), call.Node.Name, rule.Name, args)
			}
			return RenderMethod(c.Dialect().Name(), call.Node.Name, rule.Name, args)
		}
	default:
		return func(call Call, c *Compiler) (string, error) {
			call.Identifier = rule.Name
			return c.Default(call)
		}
	}
}

// RenderProperty formats receiver.property. Properties take no arguments
// besides the receiver.
func RenderProperty(dialect, function, property string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", NewArgumentError(dialect, function, "property access requires a receiver argument")
	case 1:
		return fmt.Sprintf("%s.%s", args[0], property), nil
	default:
		return "", NewArgumentError(dialect, function,
			fmt.Sprintf("property %s takes no arguments, got %d", property, len(args)-1))
	}
}

// RenderMethod formats receiver.method (args...) from compiled arguments.
// The first argument is the receiver.
func RenderMethod(dialect, function, method string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", NewArgumentError(dialect, function, "method call requires a receiver argument")
	case 1:
		return fmt.Sprintf("%s.%s()", args[0], method), nil
	default:
		return fmt.Sprintf("%s.%s (%s)", args[0], method, strings.Join(args[1:], ", ")), nil
	}
}

// RenderMethodLegacy formats a method call by splitting the joined argument
// text on commas. Only the segment after the first comma is kept.
func RenderMethodLegacy(dialect, function, method string, args []string) (string, error) {
	if len(args) == 0 {
		return "", NewArgumentError(dialect, function, "method call requires a receiver argument")
	}

	segments := strings.Split(strings.Join(args, ", "), ",")
	if segments[0] == "" {
		return "", NewArgumentError(dialect, function, "receiver compiled to empty SQL")
	}
	if len(segments) > 1 {
		return fmt.Sprintf("%s.%s (%s)", segments[0], method, segments[1]), nil
	}
	return fmt.Sprintf("%s.%s()", segments[0], method), nil
}

// isValidIdentifier checks for a plain SQL identifier: a letter or
// underscore followed by letters, digits or underscores.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}

// isValidFunctionName accepts identifiers optionally qualified with ::,
// as in geometry::STGeomFromText.
func isValidFunctionName(s string) bool {
	for _, part := range strings.Split(s, "::") {
		if !isValidIdentifier(part) {
			return false
		}
	}
	return true
}

// IsValidIdentifier reports whether s is a plain SQL identifier.
func IsValidIdentifier(s string) bool {
	return isValidIdentifier(s)
}
