package record

// Convention describes how a canonical short name maps to a fully-qualified
// type name: full = Prefix + short + Postfix. Expand and Short are exact
// inverses of each other for every short name.
type Convention struct {
	Prefix  string
	Postfix string
}

// Expand builds the fully-qualified type name for a canonical short name.
func (c Convention) Expand(short string) string {
	return c.Prefix + short + c.Postfix
}

// Short recovers the canonical short name from a fully-qualified type name.
// Stripping is length-based: exactly len(Prefix) bytes off the front and,
// only when Postfix is non-empty, len(Postfix) bytes off the back. A name
// shorter than the combined affixes yields the empty string.
func (c Convention) Short(full string) string {
	if len(full) < len(c.Prefix)+len(c.Postfix) {
		return ""
	}
	s := full[len(c.Prefix):]
	if c.Postfix != "" {
		s = s[:len(s)-len(c.Postfix)]
	}
	return s
}
