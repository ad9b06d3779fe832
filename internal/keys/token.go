package keys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/magic"
)

const (
	tokenVersion   = "sator1"
	tokenDelimiter = "/"
	tokenListSep   = ","
)

// Token encodes the key recipe on a single line:
//
//	sator1/<order>/<method>/<padding code point>/<t1,t2,...>
//
// The padding is written as a decimal code point so any character survives
// the delimiter. The key ID and timestamps are not part of the token.
func (k *CipherKey) Token() string {
	steps := make([]string, len(k.Transformations))
	for i, t := range k.Transformations {
		steps[i] = t.String()
	}
	return strings.Join([]string{
		tokenVersion,
		strconv.Itoa(k.Order),
		k.Method.String(),
		strconv.Itoa(int(k.Padding)),
		strings.Join(steps, tokenListSep),
	}, tokenDelimiter)
}

// ParseToken decodes a token produced by Token and validates the result.
func ParseToken(token string) (*CipherKey, error) {
	fields := strings.Split(strings.TrimSpace(token), tokenDelimiter)
	if len(fields) != 5 || fields[0] != tokenVersion {
		return nil, fmt.Errorf("%w: expected %s/<order>/<method>/<padding>/<transformations>", serrors.ErrInvalidKey, tokenVersion)
	}

	order, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: order %q is not an integer", serrors.ErrInvalidKey, fields[1])
	}
	method, err := magic.ParseMethod(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidKey, err)
	}
	codePoint, err := strconv.Atoi(fields[3])
	if err != nil || codePoint <= 0 || codePoint > utf8.MaxRune || !utf8.ValidRune(rune(codePoint)) {
		return nil, fmt.Errorf("%w: padding %q is not a code point", serrors.ErrInvalidKey, fields[3])
	}

	transformations, err := parseTransformations(splitNonEmpty(fields[4], tokenListSep))
	if err != nil {
		return nil, err
	}

	key := &CipherKey{
		Order:           order,
		Method:          method,
		Transformations: transformations,
		Padding:         rune(codePoint),
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidKey, err)
	}
	return key, nil
}

func parseTransformations(steps []string) ([]magic.Transformation, error) {
	transformations := make([]magic.Transformation, 0, len(steps))
	for _, step := range steps {
		t, err := magic.ParseTransformation(step)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidKey, err)
		}
		transformations = append(transformations, t)
	}
	return transformations, nil
}

func splitNonEmpty(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, sep)
}
