package asm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Role is the syntactic category an operand must satisfy.
type Role int

//go:generate go tool stringer -linecomment -type=Role
const (
	ROLE_REGISTER  = Role(0) // Register
	ROLE_INTEGER   = Role(1) // Integer
	ROLE_LABEL     = Role(2) // Label
	ROLE_LABEL_DEF = Role(3) // label
)

var (
	labelDefRegex = regexp.MustCompile(`^\w+:$`)
	registerRegex = regexp.MustCompile(`^\$\w+$`)
)

// ParseRole returns the role with the given name.
func ParseRole(name string) (role Role, ok bool) {
	for role = ROLE_REGISTER; role <= ROLE_LABEL_DEF; role++ {
		if role.String() == name {
			ok = true
			return
		}
	}
	return
}

// ParseInteger parses an integer literal into a 32-bit machine word.
// Literals are decimal unless they carry a 0x, 0o or 0b prefix, and may be
// written signed or unsigned; 0xffffffff and -1 are the same word.
func ParseInteger(token string) (value int32, err error) {
	if strings.ContainsRune(token, '_') {
		err = ErrParseNumber(token)
		return
	}

	base := 10
	digits := strings.TrimLeft(token, "+-")
	if len(digits) > 1 && digits[0] == '0' && strings.ContainsRune("xXoObB", rune(digits[1])) {
		base = 0
	}

	v64, err := strconv.ParseInt(token, base, 64)
	if err != nil || v64 < math.MinInt32 || v64 > math.MaxUint32 {
		err = ErrParseNumber(token)
		return
	}

	value = int32(uint32(v64))
	return
}

// Classify reports whether token is syntactically valid for role.
// Label references are only checked for being non-empty; whether the
// label exists is decided when it is resolved.
func Classify(token string, role Role) bool {
	switch role {
	case ROLE_LABEL_DEF:
		return labelDefRegex.MatchString(token)
	case ROLE_LABEL:
		return len(strings.TrimSpace(token)) > 0
	case ROLE_INTEGER:
		_, err := ParseInteger(token)
		return err == nil
	case ROLE_REGISTER:
		return registerRegex.MatchString(token)
	}

	panic(fmt.Sprintf("asm: unknown operand role %d", int(role)))
}
