// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// groupAtRules hold nested style rules whose selectors are scoped too.
// Any other block at-rule (@keyframes, @font-face, @page, ...) is copied
// untouched.
var groupAtRules = map[string]bool{
	"media":          true,
	"supports":       true,
	"layer":          true,
	"container":      true,
	"document":       true,
	"scope":          true,
	"starting-style": true,
}

type token struct {
	tt   css.TokenType
	data string
}

type blockKind int

const (
	ruleList blockKind = iota // top level or inside a group at-rule
	opaque                    // declarations, keyframes, font-face, ...
)

type block struct {
	kind  blockKind
	depth int // brace depth inside an opaque block

	// inScope is set inside an @scope block, where selectors starting
	// with :scope or & are already relative to a root inside ours.
	inScope bool
}

// ScopeCSS rewrites every style rule in src so it only matches inside
// root. Selectors whose leading compounds are html, body or :root are
// mapped onto root itself; every other selector becomes a descendant of
// root. Declarations, comments and unrelated at-rules are copied byte for
// byte. The root of an @scope rule is confined to root as well.
// Malformed input never fails: unparseable parts pass through.
func ScopeCSS(src, root string) string {
	if strings.TrimSpace(src) == "" {
		return src
	}

	var out strings.Builder
	out.Grow(len(src) + len(src)/4)

	stack := []block{{kind: ruleList}}
	var prelude []token

	lex := css.NewLexer(parse.NewInputString(src))
	for i := 0; i <= len(src); i++ {
		tt, data := lex.Next()
		if tt == css.ErrorToken {
			break
		}
		tok := token{tt: tt, data: string(data)}
		top := &stack[len(stack)-1]

		if top.kind == opaque {
			out.WriteString(tok.data)
			switch tt {
			case css.LeftBraceToken:
				top.depth++
			case css.RightBraceToken:
				top.depth--
				if top.depth == 0 {
					stack = stack[:len(stack)-1]
				}
			}
			continue
		}

		switch tt {
		case css.LeftBraceToken:
			inScope := top.inScope
			if name, ok := atRuleName(prelude); ok {
				if name == "scope" {
					out.WriteString(scopeAtRulePrelude(prelude, root))
				} else {
					out.WriteString(joinTokens(prelude))
				}
				out.WriteString(tok.data)
				if groupAtRules[name] {
					stack = append(stack, block{kind: ruleList, inScope: inScope || name == "scope"})
				} else {
					stack = append(stack, block{kind: opaque, depth: 1})
				}
			} else {
				out.WriteString(scopeSelectorList(prelude, root, inScope))
				out.WriteString(tok.data)
				stack = append(stack, block{kind: opaque, depth: 1})
			}
			prelude = prelude[:0]

		case css.SemicolonToken:
			out.WriteString(joinTokens(prelude))
			out.WriteString(tok.data)
			prelude = prelude[:0]

		case css.RightBraceToken:
			out.WriteString(joinTokens(prelude))
			out.WriteString(tok.data)
			prelude = prelude[:0]
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case css.WhitespaceToken, css.CommentToken, css.CDOToken, css.CDCToken:
			if len(prelude) == 0 {
				out.WriteString(tok.data)
				continue
			}
			prelude = append(prelude, tok)

		default:
			prelude = append(prelude, tok)
		}
	}

	// Unterminated trailing prelude.
	out.WriteString(joinTokens(prelude))
	return out.String()
}

// atRuleName returns the lowercased name of an at-rule prelude without
// its vendor prefix.
func atRuleName(prelude []token) (string, bool) {
	if len(prelude) == 0 || prelude[0].tt != css.AtKeywordToken {
		return "", false
	}
	name := strings.ToLower(strings.TrimPrefix(prelude[0].data, "@"))
	if strings.HasPrefix(name, "-") {
		if i := strings.Index(name[1:], "-"); i >= 0 {
			name = name[i+2:]
		}
	}
	return name, true
}

// scopeAtRulePrelude rewrites the prelude of an @scope rule so its
// scoping root lies inside root. A missing scoping root becomes root; the
// optional "to (...)" limit is kept as written.
func scopeAtRulePrelude(prelude []token, root string) string {
	keyword, rest := prelude[0].data, prelude[1:]
	open := 0
	for open < len(rest) && isSpace(rest[open]) {
		open++
	}
	if open == len(rest) || rest[open].tt != css.LeftParenthesisToken {
		return keyword + " (" + root + ")" + joinTokens(rest)
	}

	end, depth := -1, 0
	for i := open; i < len(rest) && end < 0; i++ {
		switch rest[i].tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			if depth == 0 {
				end = i
			}
		}
	}
	if end < 0 {
		// Unbalanced; drop whatever followed the keyword.
		return keyword + " (" + root + ")"
	}

	inner := rest[open+1 : end]
	start := root
	if _, sel, _ := trimSpace(inner); len(sel) > 0 {
		start = scopeSelectorList(inner, root, false)
	}
	return keyword + joinTokens(rest[:open]) + "(" + start + ")" + joinTokens(rest[end+1:])
}

func joinTokens(ts []token) string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.data)
	}
	return b.String()
}

// scopeSelectorList scopes each comma-separated selector of a rule
// prelude. Commas inside functional pseudo-classes are not separators.
// With inScope set, selectors relative to an @scope root are kept.
func scopeSelectorList(prelude []token, root string, inScope bool) string {
	var parts [][]token
	start, depth := 0, 0
	for i, t := range prelude {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, prelude[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, prelude[start:])

	scoped := make([]string, 0, len(parts))
	for _, p := range parts {
		lead, sel, trail := trimSpace(p)
		if inScope && scopeRelative(sel) {
			scoped = append(scoped, lead+joinTokens(sel)+trail)
			continue
		}
		scoped = append(scoped, lead+scopeSelector(sel, root)+trail)
	}
	return strings.Join(scoped, ",")
}

// trimSpace splits leading and trailing whitespace and comments off a
// selector so the rewrite only sees the selector itself.
func trimSpace(ts []token) (string, []token, string) {
	i, j := 0, len(ts)
	for i < j && isSpace(ts[i]) {
		i++
	}
	for j > i && isSpace(ts[j-1]) {
		j--
	}
	return joinTokens(ts[:i]), ts[i:j], joinTokens(ts[j:])
}

func isSpace(t token) bool {
	return t.tt == css.WhitespaceToken || t.tt == css.CommentToken
}

// scopeRelative reports whether sel starts at the @scope root (":scope"
// or the "&" nesting selector).
func scopeRelative(sel []token) bool {
	if len(sel) == 0 {
		return false
	}
	if sel[0].tt == css.DelimToken && sel[0].data == "&" {
		return true
	}
	return len(sel) > 1 && sel[0].tt == css.ColonToken && sel[1].tt == css.IdentToken && strings.EqualFold(sel[1].data, "scope")
}

func scopeSelector(sel []token, root string) string {
	if len(sel) == 0 {
		return ""
	}
	if sel[0].tt == css.HashToken && sel[0].data == root {
		return joinTokens(sel)
	}

	rest := sel
	var suffix strings.Builder
	matched := false
	for {
		n := rootCompound(rest)
		if n == 0 {
			break
		}
		end := compoundEnd(rest)
		suffix.WriteString(joinTokens(rest[n:end]))
		matched = true
		rest = rest[end:]

		c := combinatorEnd(rest)
		if c == len(rest) || rootCompound(rest[c:]) == 0 {
			break
		}
		rest = rest[c:]
	}

	if !matched {
		return root + " " + joinTokens(sel)
	}
	return root + suffix.String() + joinTokens(rest)
}

// rootCompound reports how many leading tokens name the document root
// (html, body or :root), or 0.
func rootCompound(ts []token) int {
	if len(ts) == 0 {
		return 0
	}
	if ts[0].tt == css.IdentToken {
		switch strings.ToLower(ts[0].data) {
		case "html", "body":
			return 1
		}
	}
	if len(ts) > 1 && ts[0].tt == css.ColonToken && ts[1].tt == css.IdentToken && strings.EqualFold(ts[1].data, "root") {
		return 2
	}
	return 0
}

// compoundEnd returns the index of the first combinator outside any
// brackets, or len(ts).
func compoundEnd(ts []token) int {
	depth := 0
	for i, t := range ts {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.WhitespaceToken, css.ColumnToken:
			if depth == 0 {
				return i
			}
		case css.DelimToken:
			if depth == 0 && isCombinator(t.data) {
				return i
			}
		}
	}
	return len(ts)
}

// combinatorEnd returns the index just past a run of combinator tokens.
func combinatorEnd(ts []token) int {
	i := 0
	for i < len(ts) {
		t := ts[i]
		if isSpace(t) || t.tt == css.ColumnToken || (t.tt == css.DelimToken && isCombinator(t.data)) {
			i++
			continue
		}
		break
	}
	return i
}

func isCombinator(s string) bool {
	return s == ">" || s == "+" || s == "~"
}
