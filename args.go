package strata

import (
	"fmt"
	"strings"

	"github.com/0xalexb/strata/merge"
)

// ArgParser is the command-line collaborator: a set of declared options
// with defaults that can split a token list into explicitly provided
// values and leftover raw tokens. The args package provides a
// pflag-backed implementation.
type ArgParser interface {
	// Defaults returns the declared options' default values; options
	// without a default are absent.
	Defaults() map[string]any

	// Parse returns the values explicitly present in argv for declared
	// options (typed through the YAML scalar grammar) and the tokens
	// that matched no declared option.
	Parse(argv []string) (explicit map[string]any, rest []string, err error)
}

// LoadArgs reconciles three priority tiers into one mapping: declared
// option defaults (lowest), configuration files referenced through a
// "config" option or "--config..." tokens (middle), and explicit
// command-line overrides (highest).
//
// Leftover tokens follow the "--key value [value2 ...]" convention:
// consecutive values are space-joined and typed through the YAML scalar
// grammar, and dots in the key build nested structure ("--a.b.c 1" yields
// {a: {b: {c: 1}}}). A key whose first segment is "config" is resolved as
// a file include and merged at lower priority than what is already
// accumulated; every other key overrides.
func (l *Loader) LoadArgs(parser ArgParser, argv []string) (map[string]any, error) {
	explicit, rest, err := parser.Parse(argv)
	if err != nil {
		return nil, err
	}

	if explicit == nil {
		explicit = make(map[string]any)
	}

	defaults := merge.Copy(parser.Defaults())

	// A declared default config file still participates: it is loaded
	// unless an explicit --config replaces it, and its contents beat the
	// remaining declared defaults.
	if _, ok := explicit[ReservedKey]; !ok {
		if d, ok := defaults[ReservedKey]; ok {
			explicit[ReservedKey] = d
		}
	}

	delete(defaults, ReservedKey)

	cfg, err := l.Load(explicit, nil)
	if err != nil {
		return nil, err
	}

	pairs, err := groupTokens(rest)
	if err != nil {
		return nil, err
	}

	for _, pair := range pairs {
		// Command-line values always go through the YAML scalar grammar,
		// so "--a 1" yields an integer and "--a [1,2]" a sequence.
		value, err := l.codecFor(".yaml").Decode([]byte(pair.value()))
		if err != nil {
			return nil, fmt.Errorf("value for --%s: %w", pair.key, err)
		}

		add := nestedValue(pair.key, value)

		first, _, _ := strings.Cut(pair.key, ".")
		if first == ReservedKey {
			resolved, err := l.Load(add, nil)
			if err != nil {
				return nil, err
			}

			cfg, err = l.Load(cfg, resolved)
			if err != nil {
				return nil, err
			}

			continue
		}

		cfg, err = l.Load(add, cfg)
		if err != nil {
			return nil, err
		}
	}

	return merge.Maps(defaults, cfg), nil
}

type argPair struct {
	key    string
	values []string
}

func (p *argPair) value() string {
	return strings.Join(p.values, " ")
}

// groupTokens gathers consecutive non-flag tokens under the preceding
// --key token. Repeating a key resets its values but keeps its original
// position in the sequence.
func groupTokens(tokens []string) ([]*argPair, error) {
	var (
		pairs   []*argPair
		current *argPair
	)

	index := make(map[string]*argPair)

	for _, token := range tokens {
		if strings.HasPrefix(token, "--") {
			key, inline, hasInline := strings.Cut(strings.TrimPrefix(token, "--"), "=")

			pair, seen := index[key]
			if !seen {
				pair = &argPair{key: key}
				index[key] = pair
				pairs = append(pairs, pair)
			} else {
				pair.values = nil
			}

			if hasInline {
				pair.values = append(pair.values, inline)
			}

			current = pair

			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%w: unexpected value %q", ErrUsage, token)
		}

		current.values = append(current.values, token)
	}

	return pairs, nil
}

// nestedValue builds the nested mapping a dotted key addresses:
// "a.b.c" with value v becomes {a: {b: {c: v}}}.
func nestedValue(key string, value any) map[string]any {
	segments := strings.Split(key, ".")

	root := make(map[string]any)
	current := root

	for _, segment := range segments[:len(segments)-1] {
		next := make(map[string]any)
		current[segment] = next
		current = next
	}

	current[segments[len(segments)-1]] = value

	return root
}
