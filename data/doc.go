// Package data builds the root context for template rendering from YAML or
// JSON documents and command-line assignments.
//
// Documents are decoded with [Decode] and layered with [Merge], so later
// documents override earlier ones key by key. [Assign] then evaluates
// expressions of the form "name=expression" against the merged data and
// stores each result at a dotted path:
//
//	root, _ := data.Decode(ctx, file)
//	root, _ = data.Assign(root, `title = upper(site.name) + " home"`)
//
// Expressions use the expr language (https://expr-lang.org). Every value
// already present in the data is visible to an expression by name, and the
// function env(name) returns the value of an environment variable.
package data
