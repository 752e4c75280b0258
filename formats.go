// Credit to https://github.com/santhosh-tekuri/jsonschema for the RFC
// parsers below, which the standard library has no direct equivalent for.
package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// defaultFormats seeds a fresh format registry with the predicates every
// draft's format vocabulary names.
func defaultFormats() map[string]func(any) bool {
	return map[string]func(any) bool{
		"date-time":             isDateTime,
		"date":                  isDate,
		"time":                  isTime,
		"duration":              isDuration,
		"period":                isPeriod,
		"hostname":              isHostname,
		"idn-hostname":          isHostname,
		"email":                 isEmail,
		"idn-email":             isEmail,
		"ip-address":            isIPv4,
		"ipv4":                  isIPv4,
		"ipv6":                  isIPv6,
		"uri":                   isURI,
		"iri":                   isURI,
		"uri-reference":         isURIReference,
		"iri-reference":         isURIReference,
		"uriref":                isURIReference,
		"uri-template":          isURITemplate,
		"json-pointer":          isJSONPointer,
		"relative-json-pointer": isRelativeJSONPointer,
		"uuid":                  isUUID,
		"regex":                 isRegexFormat,
		"unknown":               func(any) bool { return true },
	}
}

// stringOrSkip extracts the string value of v, reporting ok=false when v
// isn't a string: format keywords annotate rather than reject non-string
// instances.
func stringOrSkip(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func isDateTime(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	if len(s) < 20 || (s[10] != 'T' && s[10] != 't') {
		return false
	}
	return isDate(s[:10]) && isTime(s[11:])
}

func isDate(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isTime parses RFC 3339 full-time by hand because time.Parse rejects the
// leap second value 60 that the format still has to accept.
func isTime(v any) bool {
	str, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	inRange := func(s string, min, max int) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}
	h, okH := inRange(str[0:2], 0, 23)
	m, okM := inRange(str[3:5], 0, 59)
	sec, okS := inRange(str[6:8], 0, 60)
	if !okH || !okM || !okS {
		return false
	}
	rest := str[8:]
	if rest != "" && rest[0] == '.' {
		rest = rest[1:]
		digits := 0
		for rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			digits++
			rest = rest[1:]
		}
		if digits == 0 {
			return false
		}
	}
	if rest == "" {
		return false
	}
	if rest[0] == 'z' || rest[0] == 'Z' {
		if len(rest) != 1 {
			return false
		}
	} else {
		if len(rest) != 6 || rest[3] != ':' {
			return false
		}
		sign := 0
		switch rest[0] {
		case '+':
			sign = -1
		case '-':
			sign = 1
		default:
			return false
		}
		zh, okZH := inRange(rest[1:3], 0, 23)
		zm, okZM := inRange(rest[4:6], 0, 59)
		if !okZH || !okZM {
			return false
		}
		hm := (h*60 + m) + sign*(zh*60+zm)
		if hm < 0 {
			hm += 24 * 60
		}
		h, m = hm/60, hm%60
	}
	if sec == 60 && (h != 23 || m != 59) {
		return false
	}
	return true
}

// isDuration checks the ISO 8601 duration ABNF given in RFC 3339 appendix A.
func isDuration(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	if s == "" || s[0] != 'P' {
		return false
	}
	s = s[1:]
	readUnits := func() (string, bool) {
		var units strings.Builder
		for len(s) > 0 && s[0] != 'T' {
			digits := false
			for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
				digits = true
				s = s[1:]
			}
			if !digits || len(s) == 0 {
				return units.String(), false
			}
			units.WriteByte(s[0])
			s = s[1:]
		}
		return units.String(), true
	}
	units, ok := readUnits()
	if !ok {
		return false
	}
	if units == "W" {
		return len(s) == 0
	}
	if len(units) > 0 {
		if !strings.Contains("YMD", units) {
			return false
		}
		if len(s) == 0 {
			return true
		}
	}
	if len(s) == 0 || s[0] != 'T' {
		return false
	}
	s = s[1:]
	units, ok = readUnits()
	return ok && len(s) == 0 && len(units) > 0 && strings.Contains("HMS", units)
}

func isPeriod(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	slash := strings.IndexByte(s, '/')
	if slash == -1 {
		return false
	}
	start, end := s[:slash], s[slash+1:]
	if isDateTime(start) {
		return isDateTime(end) || isDuration(end)
	}
	return isDuration(start) && isDateTime(end)
}

// isHostname follows RFC 1034 §3.1 with the RFC 1123 §2.1 relaxation that
// labels may start with a digit.
func isHostname(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		n := len(label)
		if n < 1 || n > 63 {
			return false
		}
		if label[0] == '-' || label[n-1] == '-' {
			return false
		}
		for _, c := range label {
			alnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			if !alnum && c != '-' {
				return false
			}
		}
	}
	return true
}

func isEmail(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return isIPv6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return isIPv4(ip)
	}
	if !isHostname(domain) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// isIPv4 rejects leading zeroes, which dotted-quad parsers otherwise treat
// as an octal escape hatch RFC 2673 §3.2 does not intend.
func isIPv4(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && g[0] == '0' {
			return false
		}
	}
	return true
}

func isIPv6(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	return strings.Contains(s, ":") && net.ParseIP(s) != nil
}

func parseURIStrict(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	host := u.Hostname()
	if strings.IndexByte(host, ':') != -1 {
		if !strings.Contains(u.Host, "[") || !strings.Contains(u.Host, "]") {
			return nil, ErrInvalidPointer
		}
		if !isIPv6(host) {
			return nil, ErrInvalidPointer
		}
	}
	return u, nil
}

func isURI(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	u, err := parseURIStrict(s)
	return err == nil && u.IsAbs()
}

func isURIReference(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	_, err := parseURIStrict(s)
	return err == nil && !strings.Contains(s, `\`)
}

// isURITemplate does minimal validation: balanced, non-nested {...}
// expressions in the path, per RFC 6570.
func isURITemplate(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	u, err := parseURIStrict(s)
	if err != nil {
		return false
	}
	for _, segment := range strings.Split(u.RawPath, "/") {
		depth := 0
		for _, ch := range segment {
			switch ch {
			case '{':
				depth++
				if depth != 1 {
					return false
				}
			case '}':
				depth--
				if depth != 0 {
					return false
				}
			}
		}
		if depth != 0 {
			return false
		}
	}
	return true
}

// isJSONPointer rejects the URI-fragment spelling ("#/a/b"); only the bare
// pointer form counts.
func isJSONPointer(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	if s != "" && !strings.HasPrefix(s, "/") {
		return false
	}
	for _, segment := range strings.Split(s, "/") {
		for i := 0; i < len(segment); i++ {
			if segment[i] != '~' {
				continue
			}
			if i == len(segment)-1 {
				return false
			}
			if segment[i+1] != '0' && segment[i+1] != '1' {
				return false
			}
		}
	}
	return true
}

func isRelativeJSONPointer(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	if s == "" {
		return false
	}
	switch {
	case s[0] == '0':
		s = s[1:]
	case s[0] >= '1' && s[0] <= '9':
		for s != "" && s[0] >= '0' && s[0] <= '9' {
			s = s[1:]
		}
	default:
		return false
	}
	return s == "#" || isJSONPointer(s)
}

func isUUID(v any) bool {
	s, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	readHex := func(n int) bool {
		for ; n > 0; n-- {
			if len(s) == 0 {
				return false
			}
			hex := (s[0] >= '0' && s[0] <= '9') || (s[0] >= 'a' && s[0] <= 'f') || (s[0] >= 'A' && s[0] <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, n := range groups {
		if !readHex(n) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

func isRegexFormat(v any) bool {
	pattern, ok := stringOrSkip(v)
	if !ok {
		return true
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}
