// Package describe parses the descriptor strings printed by `git describe --dirty`
// (for example "v1.2.3-5-gabcdef-dirty" or "R_0_6_3") into a Descriptor.
//
// Parsing is split into a tokenizer, which applies one grammar rule at a time to a
// shrinking working string, and Parse, which assembles the resulting tokens and
// validates them. Rules run in a fixed order:
//
//  1. a trailing "-dirty" marker
//  2. a leading "v" or, failing that, "R_" prefix
//  3. a trailing "-g<hash>" segment
//  4. a trailing "-<distance>" segment, only when a hash was found
//  5. splitting the remainder on the first of "_", "." or "-" that occurs
package describe
