// Package ability holds the read-only view of abilities and ability
// categories that the host registry exposes, together with the list
// filtering and field shaping shared by every command.
//
// Abilities are identified by a two-segment "namespace/slug" name and carry
// an open meta map. Three well-known annotations (readonly, destructive,
// idempotent) are read from meta["annotations"] as tri-state booleans, and
// show_in_rest from meta["show_in_rest"]. Nothing in this package mutates
// host state.
package ability
