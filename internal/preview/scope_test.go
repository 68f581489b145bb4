// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import "testing"

func TestScopeCSS(t *testing.T) {
	const root = "#preview-root"
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"body", "body { color: red; }", "#preview-root { color: red; }"},
		{"uppercase body", "BODY{color:red}", "#preview-root{color:red}"},
		{"html", "html{font-size:18px}", "#preview-root{font-size:18px}"},
		{":root", ":root { --accent: #f00; }", "#preview-root { --accent: #f00; }"},
		{"html body merged", "html body .bio-name{color:red}", "#preview-root .bio-name{color:red}"},
		{"body with class", "body.dark .x{a:b}", "#preview-root.dark .x{a:b}"},
		{"body child combinator", "body > .bio-links{a:b}", "#preview-root > .bio-links{a:b}"},
		{"semantic class", ".bio-name { color: red }", "#preview-root .bio-name { color: red }"},
		{"pseudo class", "a:hover{x:y}", "#preview-root a:hover{x:y}"},
		{"selector list", "body, .bio-footer{x:y}", "#preview-root, #preview-root .bio-footer{x:y}"},
		{"class containing body", ".bodyguard{x:y}", "#preview-root .bodyguard{x:y}"},
		{"body later in selector", ".x body{x:y}", "#preview-root .x body{x:y}"},
		{"already scoped", "#preview-root .x{x:y}", "#preview-root .x{x:y}"},
		{"root prefix is not root", "#preview-rootless h1 { color: red }", "#preview-root #preview-rootless h1 { color: red }"},
		{"root compound kept", "#preview-root.dark h1{x:y}", "#preview-root.dark h1{x:y}"},
		{"comma inside :is", ":is(.a, .b) span{x:y}", "#preview-root :is(.a, .b) span{x:y}"},
		{"declarations untouched", ".a{background:url(body.png);content:\"body\"}", "#preview-root .a{background:url(body.png);content:\"body\"}"},
		{
			"media recursion",
			"@media (max-width: 600px) { body { padding: 0 } .a { b: c } }",
			"@media (max-width: 600px) { #preview-root { padding: 0 } #preview-root .a { b: c } }",
		},
		{
			"supports recursion",
			"@supports (display: grid) { html { x: y } }",
			"@supports (display: grid) { #preview-root { x: y } }",
		},
		{
			"scope root confined",
			"@scope (body) { h1 { color: red } }",
			"@scope (#preview-root) { #preview-root h1 { color: red } }",
		},
		{
			"scope without root",
			"@scope { h1 {a:b} }",
			"@scope (#preview-root) { #preview-root h1 {a:b} }",
		},
		{
			"scope limit and relative selectors",
			"@scope (.card) to (.content) { :scope > p {a:b} & img {c:d} img {e:f} }",
			"@scope (#preview-root .card) to (.content) { :scope > p {a:b} & img {c:d} #preview-root img {e:f} }",
		},
		{
			"media inside scope",
			"@scope (.card) { @media print { :scope {a:b} h1 {c:d} } }",
			"@scope (#preview-root .card) { @media print { :scope {a:b} #preview-root h1 {c:d} } }",
		},
		{
			"starting-style recursion",
			"@starting-style { h1 { opacity: 0 } }",
			"@starting-style { #preview-root h1 { opacity: 0 } }",
		},
		{
			"keyframes untouched",
			"@keyframes body { from { opacity: 0 } to { opacity: 1 } }",
			"@keyframes body { from { opacity: 0 } to { opacity: 1 } }",
		},
		{
			"vendor keyframes untouched",
			"@-webkit-keyframes spin { from { x: y } }",
			"@-webkit-keyframes spin { from { x: y } }",
		},
		{
			"font-face untouched",
			"@font-face { font-family: body; src: url(a.woff2); }",
			"@font-face { font-family: body; src: url(a.woff2); }",
		},
		{"import passes through", "@import url(x.css);\nbody{a:b}", "@import url(x.css);\n#preview-root{a:b}"},
		{"comments kept", "/* body */ body{a:b}", "/* body */ #preview-root{a:b}"},
		{"unterminated rule", "body { color: red", "#preview-root { color: red"},
		{"stray close brace", "} body{a:b}", "} #preview-root{a:b}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScopeCSS(tt.in, root); got != tt.want {
				t.Errorf("ScopeCSS(%q)\n got %q\nwant %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestScopeCSSGarbage makes sure hostile or broken input terminates and
// never panics.
func TestScopeCSSGarbage(t *testing.T) {
	inputs := []string{
		"{{{{",
		"}}}}",
		"@media {",
		"body,,,{",
		"\"unterminated",
		"url(",
		"/* open comment",
		"</style><script>alert(1)</script>",
		"@scope (",
		"@scope ({ h1{a:b} }",
		"@scope (body) to ( {",
	}
	for _, in := range inputs {
		_ = ScopeCSS(in, "#r")
	}
}
