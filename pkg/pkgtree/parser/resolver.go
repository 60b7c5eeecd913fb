package parser

import "github.com/jamesainslie/pkgtree/pkg/pkgtree/types"

// defaultScope is the ambient default set accumulated by /set and /unset
// directives. Exactly one scope exists per parse; it is flat, not stacked:
// a directive applies from its line onward to end of file. Path entries
// read the scope and never mutate it.
type defaultScope struct {
	defaults types.Defaults
}

// set merges the fields present in d into the scope, overwriting any
// previous values for the same keys.
func (s *defaultScope) set(d types.Defaults) {
	if d.UID != nil {
		s.defaults.UID = d.UID
	}
	if d.GID != nil {
		s.defaults.GID = d.GID
	}
	if d.Mode != "" {
		s.defaults.Mode = d.Mode
	}
	if d.Type != "" {
		s.defaults.Type = d.Type
	}
}

// unset removes the named keys from the scope, or every key for a bare
// /unset. Unsetting an absent key is a no-op, and a directive whose fields
// all failed to parse removes nothing.
func (s *defaultScope) unset(u types.Unset) {
	if u.Clear {
		s.defaults = types.Defaults{}
		return
	}
	for _, k := range u.Keys {
		switch k {
		case types.KeyUID:
			s.defaults.UID = nil
		case types.KeyGID:
			s.defaults.GID = nil
		case types.KeyMode:
			s.defaults.Mode = ""
		case types.KeyType:
			s.defaults.Type = ""
		}
	}
}

// resolve merges the current scope with a path statement's explicit fields
// to produce the final entry. Explicit fields always win. Only mode and
// type carry over from the scope: uid and gid are default-only properties
// with no slot on path entries.
func (s *defaultScope) resolve(p types.Path) types.Entry {
	e := types.Entry{
		Path: p.Path,
		Mode: s.defaults.Mode,
		Type: s.defaults.Type,
	}
	if p.Props.Mode != "" {
		e.Mode = p.Props.Mode
	}
	if p.Props.Type != "" {
		e.Type = p.Props.Type
	}
	e.Size = p.Props.Size
	e.Link = p.Props.Link
	e.Digest = p.Props.Digest
	e.Time = p.Props.Time
	return e
}
