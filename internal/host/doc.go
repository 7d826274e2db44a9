// Package host implements registry.Registry on top of declarative definition
// files, so the ability CLI works without an external platform.
//
// Definitions live in two directories under the configuration path:
//
//	categories/<file>.{yaml,yml,json,toml}
//	abilities/<file>.{yaml,yml,json,toml}
//
// Files are read in file-name order, which is also the enumeration order of
// ListAbilities and ListCategories. Invalid files, duplicates and abilities
// that reference an unknown category are skipped with a warning.
//
// An ability definition looks like:
//
//	name: text/greet
//	label: Greet
//	description: Greets someone.
//	category: text
//	input_schema:
//	  type: object
//	  properties:
//	    name: {type: string, default: World}
//	meta:
//	  show_in_rest: true
//	  annotations: {readonly: true}
//	permission: '{{ ne .input.name "root" }}'
//	execute:
//	  template: 'Hello {{ .input.name }}'
//
// execute.template is a text/template with the sprig functions; its output is
// decoded as JSON when possible. execute.command runs a program with the input
// as JSON on stdin and ABILITY_NAME and ABILITY_INVOCATION_ID in its
// environment, bounded by execute.timeout (default 30s).
//
// Inputs and outputs are validated with JSON Schema. permission, when set,
// must render to a boolean.
package host
