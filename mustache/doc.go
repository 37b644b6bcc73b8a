// Package mustache implements a logic-less template engine in the style of
// Mustache.
//
// Templates pass through three stages:
//
//   - [Compile] scans source text into a flat sequence of [Token]s.
//   - [Parse] builds a tree of [Node]s, nesting section bodies under their
//     opening tag and checking that every section is closed by name.
//   - [Render] walks the tree against a [Value] context and writes output.
//
// [New] and [RenderTemplate] combine the stages for the common case.
//
// # Tags
//
//	{{name}}          HTML-escaped variable
//	{{{name}}}        unescaped variable
//	{{&name}}         unescaped variable
//	{{#name}}...{{/name}}  section
//	{{^name}}...{{/name}}  inverted section
//	{{>name}}         partial
//	{{! comment }}    comment
//	{{=<% %>=}}       change delimiters for the rest of the template
//
// Whitespace surrounding a tag name is ignored. The name "." refers to the
// current context, and dotted names such as "user.address.city" descend
// through nested maps.
//
// # Values
//
// Render data is a tree of [String], [Bool], [List], and [Map]. The root must
// be a Map. Build values directly, with [NewMapBuilder], or from decoded
// YAML and JSON with [FromNative].
//
// A name is resolved by searching the context stack from the innermost frame
// outward, considering only Map frames. A name that cannot be resolved
// renders as nothing.
//
// # Sections
//
// A section renders its body according to the value of its name:
//
//   - absent, false, or an empty list: not rendered
//   - true or a string: rendered once in the current context
//   - a non-empty list: rendered once per element, with the element pushed
//   - a map: rendered once with the map pushed
//
// An inverted section renders its body exactly when a section would not.
//
// # Partials
//
// Partials are supplied through a [PartialResolver]. [Partials] holds
// precompiled trees, and [LoaderPartials] compiles templates on demand from a
// [Loader] such as [FileLoader]. A partial renders against the context stack
// in effect at its tag. Nesting is limited by [WithMaxDepth].
//
// # Example
//
//	data := mustache.NewMapBuilder().
//		Insert("name", "World").
//		Build()
//
//	out, err := mustache.RenderString(ctx, "Hello, {{name}}!", data, nil)
//	// out == "Hello, World!"
package mustache
